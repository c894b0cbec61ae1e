// Package internalcheck holds source-level policy tests for the lsss
// packages. It has no exported API.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They fail when library code:
//
//   - uses a floating point type or literal in lsss, field or linalg, where
//     every quantity must stay an exact field element or matrix entry;
//   - writes to the console through fmt.Print*, log.Print* or the print
//     builtins;
//   - formats values with %x, which is how secrets usually leak into logs.
//
// Test files of the checked packages are not loaded.
package internalcheck
