// Package lsss implements the linear secret sharing layer used by LSSS-based
// attribute-based encryption.
//
// An access policy is given as a matrix M over the integers with a row
// labelling ρ (Matrix). Column 0 is the secret coordinate.
//
// # Splitting
//
// Splitter draws v = (s, r_1, …, r_{n-1}) with uniform r_j and hands out
// λ_i = M_i · v for every row i:
//
//	splitter, _ := lsss.NewSplitter(field.BN254())
//	shares, err := splitter.Split(secret, matrix)
//
// # Reconstruction
//
// Reconstructor turns a set of presented attributes into coefficients ω with
// Σ ω_i · λ_i = s. It asks a Resolver for a minimal authorized subset,
// selects the rows it labels, greedily picks one nonzero column per row,
// inverts the resulting square matrix exactly over the field and reads ω off
// the row of the inverse that belongs to column 0:
//
//	rec, _ := lsss.NewReconstructor(field.BN254())
//	omega, err := rec.Reconstruct(attrs, matrix, resolver)
//	if errors.Is(err, lsss.ErrUnsatisfiedAccessStructure) {
//	    // lsss.ReasonOf(err) tells why
//	}
//	secret, err := lsss.Combine(field.BN254(), omega, shares.ByAttribute)
//
// Row and column scans run in index order only, so the coefficients are a
// deterministic function of the matrix and the minimal subset.
//
// # Resolvers
//
// Resolvers normally come from the policy engine that produced the matrix.
// SpanResolver is a self-contained alternative that decides authorization by
// an exact row-span test on the matrix.
//
// # Tracing
//
// Both operations are silent. Attach a Tracer (see NewLogTracer and the
// metrics subpackage) to observe each step of a reconstruction.
//
// # Concurrency
//
// Matrices are read-only; Splitter and Reconstructor are immutable. Both may
// be shared across goroutines, provided the configured random source and
// tracers are themselves safe for concurrent use.
package lsss
