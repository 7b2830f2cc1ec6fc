// Package override discovers and invokes per-field form overrides.
//
// An override transforms the value of one attribute before it is shown in a
// form. Overrides are found in two ways:
//
//   - by convention: an exported method named Override<StudlyKey> in the method
//     set of the model type, e.g. OverrideFirstName for "first_name";
//   - by declaration: Declare registers a function for a type and key.
//
// Accepted method shapes (receiver omitted):
//   - func(v T) R
//   - func(v T) (R, error)
//
// The set of overrides of a type is computed once and cached in the registry,
// keyed by the type itself. Methods named like overrides but shaped otherwise
// are recorded as rejected and never invoked.
package override
