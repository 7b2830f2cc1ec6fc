// Package cast describes how model attributes are declared to be cast and
// coerces raw date-like values into time.Time.
//
// # Cast declarations
//
// A cast is declared as a string per attribute key:
//
//	created_at: datetime          # date kind
//	published_on: date:2006-01-02 # custom-format date kind (Go layout)
//	status: enum                  # opaque pass-through
//	status: enum:PostStatus       # enum with a type name
//	views: integer                # any other cast, carried but not applied
//
// Only the date kinds and the enum kind influence form value resolution.
//
// # Date coercion
//
// A Coercer turns a non-nil raw value into a time.Time. The default coercer
// delegates to github.com/viant/toolbox and tries the requested layouts first,
// then its own defaults. Failures are reported as *ParseError, which unwraps to
// ErrParse.
package cast
