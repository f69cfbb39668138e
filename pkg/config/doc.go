// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables and YAML files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3` to deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Reads YAML configuration files into typed structs (LoadFile).
//   - Exposes helpers that panic on failure (`MustLoad`, `MustLoadFile`) for
//     scenarios where configuration is critical.
//   - Allows explicit cache reset which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds a
// `sync.Once` instance guaranteeing the expensive parsing work is executed at
// most once per configuration type even when accessed from multiple goroutines
// concurrently.
//
// The exported helpers interact with the cache in a thread-safe manner using
// `sync.RWMutex`, while low-level parsing is delegated to `env.Parse` and
// `yaml.Unmarshal`. File-based configs are deliberately not cached.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type CacheConfig struct {
//	    Capacity int           `env:"CACHE_CAPACITY" envDefault:"1024"`
//	    TTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
//	}
//
// Load the default `.env` file (optional) then populate the struct:
//
//	import "github.com/sebastienrousseau/commons/pkg/config"
//
//	func main() {
//	    // Optionally load one or many custom .env files before parsing.
//	    if err := config.LoadEnv("./config/.env" /* more files ... */); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var cfg CacheConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//
//	    // cfg is now populated and cached for future calls.
//	}
//
// Subsequent calls to `config.Load(&cfg)` will be served from the in-memory
// cache without re-parsing.
//
// YAML files use the same typed-struct approach:
//
//	type AppConfig struct {
//	    Name     string `yaml:"name"`
//	    Capacity int    `yaml:"capacity"`
//	}
//
//	cfg, err := config.LoadFile[AppConfig]("config.yaml")
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`      – nil pointer passed to `Load`/`MustLoad`.
//   - `ErrLoadingEnvFiles` – a dotenv file passed to `LoadEnv` failed to load.
//   - `ErrReadingFile`     – a YAML config file could not be read.
//   - `ErrParsingFile`     – a YAML config file could not be parsed.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests after the process
// environment changes.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
//   - https://gopkg.in/yaml.v3 – YAML parser.
package config
