// Package environment provides simple helpers to detect the current
// application environment (development, staging, production) and propagate
// it through context.Context and structured logs.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. These values can be attached to a
// context using WithContext, extracted with FromContext and queried with the
// convenience predicates IsDevelopment, IsStaging and IsProduction.
//
// Detect reads the environment from the process environment, checking ENV,
// ENVIRONMENT, APP_ENV and GO_ENV in order and falling back to Development
// when nothing is set. Parse normalizes raw strings, accepting the common
// short forms "dev", "stage" and "prod".
//
// For structured logging the package provides LoggerExtractor which returns a
// slog.Attr containing the environment value so it can be seamlessly injected
// into slog based loggers.
//
// # Usage
//
//	import "github.com/sebastienrousseau/commons/pkg/environment"
//
//	env := environment.Detect()
//	ctx := environment.WithContext(context.Background(), env)
//
//	if environment.IsProduction(ctx) {
//		// production-only behavior
//	}
//
// Wiring the environment into a logger:
//
//	log := logger.New(
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "started") // carries env=production
package environment
