// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so log keys stay consistent across packages.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record (for example to add the name of the cookie being verified).
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "auth"),
//	    logger.WithOutput(os.Stderr),
//	)
//	s := signature.New(signature.WithLogger(log))
//
// Error returns an empty attribute for a nil error, so it can be passed
// without a nil check.
package logger
