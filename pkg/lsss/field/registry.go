package field

import (
	"fmt"
	"sort"
	"strings"
)

var (
	bn254 = mustPrime("bn254",
		"21888242871839275222246405745257275088548364400416034343698204186575808495617")
	bls12381 = mustPrime("bls12-381",
		"52435875175126190479447740508185965837690552500527637822603658699938581184513")
)

// BN254 returns the scalar field of the BN254 (alt_bn128) pairing curve.
func BN254() Field { return bn254 }

// BLS12381 returns the scalar field of the BLS12-381 pairing curve.
func BLS12381() Field { return bls12381 }

var registry = map[string]func() Field{
	"bn254":     BN254,
	"bls12-381": BLS12381,
	"secp256k1": Secp256k1,
}

// ByName looks up a built-in field. Names are case-insensitive.
func ByName(name string) (Field, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownField, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the built-in field names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
