package lsss

import "fmt"

// Combine evaluates Σ coefficients[a]·shares[a] over the coefficient map in
// sorted attribute order. Attributes with a zero coefficient need no share.
func Combine(f Field, coefficients CoefficientMap, shares ShareMap) (result Element, err error) {
	if f == nil {
		return nil, errorf("Combine", "%w: nil field", ErrFieldFault)
	}
	defer func() {
		if err != nil {
			err = wrap("Combine", err)
		}
	}()
	defer recoverFieldMismatch(&err)

	acc := f.Zero()
	for _, a := range coefficients.Attributes() {
		c := coefficients[a]
		if c.IsZero() {
			continue
		}
		share, ok := shares[a]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingShare, a)
		}
		acc = acc.Add(c.Mul(share))
	}
	return acc, nil
}
