// Package validator provides a composable set of generic, type-safe
// validation helpers and rule-building utilities for strings, numbers and
// common string formats (email, URL, IP addresses, semantic versions,
// identifiers).
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with a
// field-scoped error message. Rules are evaluated with the Apply helper which
// aggregates any failures into a ValidationErrors slice that satisfies the
// error interface, making it convenient to bubble up multiple field-specific
// problems in a single error return.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `format_rules.go`). Every exported
// validation function simply constructs and returns a Rule instance; there is
// no hidden global state, therefore the package is completely stateless,
// allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Rule              - lightweight struct containing Check func and error meta
//   - ValidationError   - describes a single failure
//   - ValidationErrors  - slice type that implements the error interface
//   - Numeric interface - generic constraint used by numeric helpers
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.InRange("age", age, 18, 120),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages
//	    }
//	}
package validator
