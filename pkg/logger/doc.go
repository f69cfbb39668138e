// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package aims to standardise structured logging across projects by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a trace id) every time Handle is invoked.
//
// # Architecture
//
// Logger builds a decorated slog.Handler. First, New determines the concrete
// slog.Handler implementation – slog.NewTextHandler or slog.NewJSONHandler –
// based on the configured Format. It then wraps the handler with
// ContextHandler which is responsible for executing any registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as Group, Error, Component, etc. live in attr.go
// and return commonly-used slog.Attr instances to keep attribute naming
// consistent across a codebase.
//
// # Usage
//
//	import "github.com/sebastienrousseau/commons/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("worker"),
//	        logger.WithContextValue("trace_id", ctxKeyTraceID),
//	    )
//	    logger.SetAsDefault(log)
//
//	    ctx := context.WithValue(context.Background(), ctxKeyTraceID, "abc-123")
//	    log.InfoContext(ctx, "processed batch",
//	        logger.Component("ingest"),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// A typical use inside this module is reporting cache evictions:
//
//	log := logger.New(logger.WithDevelopment("cache"))
//	c, _ := cache.New[string, []byte](1024,
//	    cache.WithEvictCallback(func(key string, _ []byte) {
//	        log.Debug("evicted", logger.Event("cache_evict"), slog.String("key", key))
//	    }),
//	)
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithDevelopment / WithStaging / WithProduction – sensible defaults per environment.
//   - WithEnvironment – pick the right preset from a detected environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
