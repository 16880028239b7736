// Package tag associates arbitrary objects with named tags and selects
// subsets of those objects by evaluating set expressions over tag names.
//
// Everything starts with a Scope, the registry of tag definitions. Tags
// are either extensional (an explicit set of member objects) or
// composite (an expression over other tags, evaluated lazily against
// the scope). Expressions combine tag names with four operators:
//
//   - a & b — intersection
//   - a | b — union
//   - a - b — difference
//   - a ^ b — symmetric difference
//
// All four operators share one precedence level and associate to the
// left; parentheses override grouping. The reserved tag "all" matches
// every tagged object.
//
// Example:
//
//	scope := tag.New[string]()
//	scope.Define("archiving", "deb", "tar", "zip")
//	scope.Define("encryption", "gpg", "luks", "zip")
//	scope.Define("compression", "bzip2", "deb", "gzip", "lzma", "zip")
//	scope.DefineExpr("flexible", "archiving & compression & encryption")
//
//	scope.Evaluate("(archiving | encryption) & compression") // [deb zip]
//	scope.Evaluate("all - encryption")                       // [bzip2 deb gzip lzma tar]
//	scope.Evaluate("flexible")                               // [zip]
//
// Composite definitions are never cached: redefining a tag changes the
// result of every expression that references it, directly or through
// other composites. Cyclic composite definitions are detected during
// evaluation and fail with an errors.RecursionError instead of looping.
//
// A Scope performs no internal locking; concurrent use must be
// serialized by the caller.
package tag
