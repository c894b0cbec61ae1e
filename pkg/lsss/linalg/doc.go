// Package linalg is exact linear algebra over a prime field.
//
// Everything here works on field.Element values and stays inside the field:
// pivots are normalised with modular inverses, and a matrix that is singular
// modulo p is reported as ErrSingular instead of producing coefficients. There
// is no floating point anywhere in this package.
package linalg
