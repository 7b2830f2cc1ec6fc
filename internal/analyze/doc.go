// Package analyze discovers override methods statically, without running the
// code that defines the models.
//
// It uses golang.org/x/tools/go/packages with go/types to inspect the
// pointer method set of every exported named type and reports the methods
// that follow the Override<Key> convention, the ones whose signatures the
// override registry would reject, and whether the type satisfies the form
// model interface.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: one analyzed type with its overrides
//   - OverrideInfo: one override method
package analyze
