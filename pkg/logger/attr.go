package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Algorithm records the canonical digest name under the key "algorithm".
func Algorithm(name string) slog.Attr {
	return slog.String("algorithm", name)
}

// Separator records the payload/signature separator under the key "separator".
func Separator(sep string) slog.Attr {
	return slog.String("separator", sep)
}

// Reason records why a signed value was rejected under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// CookieName records the cookie name under the key "cookie".
// If name is empty, it returns an empty Attr.
func CookieName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("cookie", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
