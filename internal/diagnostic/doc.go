// Package diagnostic provides structured errors, warnings and notes reported
// while checking model schemas and discovering override methods.
//
// Key capabilities:
//   - Rejected override signatures
//   - Relations pointing at undeclared models
//   - Keys declared both as a cast and as a relation
package diagnostic
