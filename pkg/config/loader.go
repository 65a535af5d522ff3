package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache holds one *entry per configuration type.
	cache sync.Map

	dotenvOnce sync.Once
)

// Load fills v from environment variables using `env` struct tags. The first
// call loads a .env file from the working directory if one exists. Each type
// is parsed once per process; later calls copy the cached value, and a failed
// parse is cached as well.
//
//	type SignerConfig struct {
//		Separator string `env:"COOKIE_SIGNATURE_SEPARATOR" envDefault:"."`
//	}
//
//	var cfg SignerConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	actual, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := actual.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// Parse fills v from environment variables without touching the cache.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops the cached value for T so the next Load parses it again.
func Reset[T any]() {
	cache.Delete(reflect.TypeFor[T]())
}

func loadDotenv() {
	dotenvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})
}
