package cli

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

const testPolicy = `name: a-or-b-and-c
labels: [A, B, C]
rows:
  - [1, 0]
  - [0, 1]
  - [1, 1]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestSplitIsReproducibleWithSeed(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, first, _ := run(t, "split", "-p", policy, "-s", "42", "--seed", "fixed", "-o", "json")
	require.Equal(t, ExitOK, code)
	code, second, _ := run(t, "split", "-p", policy, "-s", "42", "--seed", "fixed", "-o", "json")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, first, second)

	v := decode(t, first)
	assert.Equal(t, "bn254", v["field"])
	shares := v["shares"].([]any)
	require.Len(t, shares, 3)
	a := shares[0].(map[string]any)
	assert.Equal(t, "A", a["label"])
	assert.Equal(t, "42", a["value"])
}

func TestReconstruct(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, out, stderr := run(t, "reconstruct", "-p", policy, "-a", "B,C", "-o", "json")
	require.Equal(t, ExitOK, code, stderr)

	minusOne := new(big.Int).Sub(field.BN254().Modulus(), big.NewInt(1))
	coeffs := decode(t, out)["coefficients"].(map[string]any)
	assert.Equal(t, minusOne.String(), coeffs["B"])
	assert.Equal(t, "1", coeffs["C"])

	code, out, _ = run(t, "reconstruct", "-p", policy, "-a", "A,B")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Field: bn254")
	assert.Contains(t, out, "  A: 1\n")
	assert.Contains(t, out, "  B: 0\n")
}

func TestReconstructUnsatisfied(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, out, stderr := run(t, "reconstruct", "-p", policy, "-a", "C")
	assert.Equal(t, ExitUnsatisfied, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "no_authorized_subset")
}

func TestRoundTrip(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	for _, name := range field.Names() {
		t.Run(name, func(t *testing.T) {
			code, out, stderr := run(t, "roundtrip", "-p", policy, "-s", "123456789", "-a", "C,B", "--field", name, "-o", "json")
			require.Equal(t, ExitOK, code, stderr)
			v := decode(t, out)
			assert.Equal(t, name, v["field"])
			assert.Equal(t, "123456789", v["recovered"])
			assert.Equal(t, true, v["match"])
		})
	}
}

func TestFieldResolution(t *testing.T) {
	withField := writeFile(t, "policy.yaml", testPolicy+"field: bls12-381\n")

	_, out, _ := run(t, "reconstruct", "-p", withField, "-a", "A", "-o", "json")
	assert.Equal(t, "bls12-381", decode(t, out)["field"])

	t.Setenv("LSSS_FIELD", "secp256k1")
	_, out, _ = run(t, "reconstruct", "-p", withField, "-a", "A", "-o", "json")
	assert.Equal(t, "secp256k1", decode(t, out)["field"])

	_, out, _ = run(t, "reconstruct", "-p", withField, "-a", "A", "-o", "json", "--field", "bn254")
	assert.Equal(t, "bn254", decode(t, out)["field"])

	code, _, stderr := run(t, "reconstruct", "-p", withField, "-a", "A", "--field", "p256")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "unknown field")
}

func TestConfigFile(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)
	config := writeFile(t, "lsss.yaml", "output: json\nfield: secp256k1\n")

	code, out, _ := run(t, "--config", config, "reconstruct", "-p", policy, "-a", "A")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "secp256k1", decode(t, out)["field"])

	code, _, stderr := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "fields")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "read config")
}

func TestInvalidInput(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)
	modulus := field.BN254().Modulus().String()

	tests := map[string][]string{
		"bad output":      {"fields", "-o", "xml"},
		"bad log level":   {"fields", "--log-level", "loud"},
		"missing policy":  {"split", "-s", "1"},
		"secret too big":  {"split", "-p", policy, "-s", modulus},
		"negative secret": {"split", "-p", policy, "-s", "-1"},
		"not a number":    {"split", "-p", policy, "-s", "forty-two"},
		"bad policy":      {"split", "-p", writeFile(t, "bad.yaml", "labels: [A]\nrows: [[1, 2], [3]]\n"), "-s", "1"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, _, stderr := run(t, args...)
			assert.Equal(t, ExitError, code)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestTraceAndMetrics(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, _, stderr := run(t, "roundtrip", "-p", policy, "-s", "7", "-a", "B,C", "--trace", "--metrics")
	require.Equal(t, ExitOK, code, stderr)
	assert.Contains(t, stderr, "rows selected")
	assert.Contains(t, stderr, "coefficients computed")
	assert.Contains(t, stderr, "lsss_splits_total 1")
	assert.Contains(t, stderr, `lsss_reconstructions_total{outcome="success",reason="none"} 1`)
}

func TestMetricsWrittenOnFailure(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, out, stderr := run(t, "reconstruct", "--metrics", "-p", policy, "-a", "C")
	assert.Equal(t, ExitUnsatisfied, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, `lsss_reconstructions_total{outcome="failure",reason="no_authorized_subset"} 1`)
	assert.Contains(t, stderr, "Error:")

	code, _, stderr = run(t, "roundtrip", "--metrics", "-p", policy, "-s", "5", "-a", "B")
	assert.Equal(t, ExitUnsatisfied, code)
	assert.Contains(t, stderr, "lsss_splits_total 1")
	assert.Contains(t, stderr, `reason="no_authorized_subset"`)
}

func TestPolicyCommand(t *testing.T) {
	policy := writeFile(t, "policy.yaml", testPolicy)

	code, out, _ := run(t, "policy", "-p", policy, "-a", "A,B", "-o", "json")
	require.Equal(t, ExitOK, code)
	v := decode(t, out)
	assert.Equal(t, "a-or-b-and-c", v["name"])
	assert.Equal(t, true, v["authorized"])
	assert.Equal(t, []any{"A"}, v["minimal"])

	code, out, _ = run(t, "policy", "-p", policy, "-a", "C")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "labels:")
	assert.Contains(t, out, "# authorized: false")

	code, out, _ = run(t, "policy", "-p", policy)
	require.Equal(t, ExitOK, code)
	assert.NotContains(t, out, "# authorized")
}

func TestFieldsAndVersion(t *testing.T) {
	code, out, _ := run(t, "fields", "-o", "json")
	require.Equal(t, ExitOK, code)
	assert.Len(t, decode(t, out)["fields"], 3)

	code, out, _ = run(t, "fields")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "secp256k1")

	code, out, _ = run(t, "version")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "lsss version")

	code, out, _ = run(t, "version", "-o", "json")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, decode(t, out), "go_version")
}
