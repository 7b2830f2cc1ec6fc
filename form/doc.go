// Package form resolves the value a form field should show for a model
// attribute path.
//
// # Resolution order
//
// For a path such as "author.address.city", the first segment is the key.
// Resolve applies, stopping at the first step that produces a result:
//  1. the raw attribute of key, coerced to time.Time when key is date-castable
//  2. enum-cast keys return that value untouched
//  3. an override of key (see package override) transforms that value
//  4. a loaded relation named key: nil relations resolve to nil, otherwise
//     the rest of the path is resolved on the related value
//  5. the whole path is walked over the model (see package fieldpath)
//
// Models are anything implementing Model. Record is an in-memory
// implementation that can be embedded in a struct to give the struct its own
// Override methods:
//
//	type Post struct {
//		*form.Record
//	}
//
//	func (p *Post) OverrideTitle(v any) any { return strings.TrimSpace(v.(string)) }
package form
