package policyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

const examplePolicy = `
name: a-or-b-and-c
field: bn254
labels: [A, B, C]
rows:
  - [1, 0]
  - [0, 1]
  - [1, 1]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(examplePolicy))
	require.NoError(t, err)
	assert.Equal(t, "a-or-b-and-c", f.Name)
	assert.Equal(t, "bn254", f.Field)

	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, []lsss.Attribute{"A", "B", "C"}, m.Labels())
	assert.Equal(t, [][]int64{{1, 0}, {0, 1}, {1, 1}}, m.Entries())
}

func TestParseNegativeEntries(t *testing.T) {
	f, err := Parse([]byte("labels: [A, B]\nrows: [[1, 1], [0, -1]]\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), f.Rows[1][1])
	assert.Empty(t, f.Field)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"unknown key":   "labels: [A]\nrows: [[1]]\ncolour: red\n",
		"label count":   "labels: [A, B]\nrows: [[1]]\n",
		"ragged":        "labels: [A, B]\nrows: [[1, 0], [1]]\n",
		"no rows":       "labels: []\nrows: []\n",
		"not a number":  "labels: [A]\nrows: [[x]]\n",
		"out of range":  "labels: [A]\nrows: [[99999999999999999999]]\n",
		"empty label":   "labels: ['']\nrows: [[1]]\n",
		"not a mapping": "- 1\n- 2\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(examplePolicy), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, f.Labels)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	m, err := lsss.NewAccessMatrix([][]int64{{1, 1}, {0, -1}}, []lsss.Attribute{"A", "B"})
	require.NoError(t, err)

	data, err := FromMatrix("a-and-b", "secp256k1", m).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: a-and-b")

	back, err := Parse(data)
	require.NoError(t, err)
	got, err := back.Matrix()
	require.NoError(t, err)
	assert.Equal(t, m.Entries(), got.Entries())
	assert.Equal(t, m.Labels(), got.Labels())
	assert.Equal(t, "secp256k1", back.Field)
}
