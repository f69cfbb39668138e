// Package commons is a collection of small, focused utility packages shared
// across Go services.
//
// Each subpackage under pkg/ is self-contained and can be imported on its own:
//
//   - pkg/cache: bounded in-memory LRU cache with generic keys and values
//   - pkg/config: environment and YAML based configuration loading
//   - pkg/environment: application environment detection and context propagation
//   - pkg/id: UUID, short, prefixed, and sortable identifier generation
//   - pkg/logger: structured logging built on log/slog with context extraction
//   - pkg/retry: retry execution with configurable backoff strategies
//   - pkg/timeutil: duration formatting, parsing, and Unix timestamps
//   - pkg/validator: composable field validation rules
//
// The root package carries only the module version; all functionality lives in
// the subpackages.
package commons
