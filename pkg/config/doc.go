// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (a .env file in the working directory is
// loaded once, without overriding variables already set) and
// github.com/caarlos0/env/v11 (struct tags such as `env:"NAME"` and
// `envDefault:"value"`).
//
// Load caches the parsed value per Go type, so every package asking for the
// same struct sees the same configuration. Parse skips the cache. Reset
// clears one type, which is mostly useful in tests.
package config
