// Package policyfile reads and writes access matrices as YAML:
//
//	name: a-or-b-and-c
//	field: bn254
//	labels: [A, B, C]
//	rows:
//	  - [1, 0]
//	  - [0, 1]
//	  - [1, 1]
//
// name and field are optional. Unknown keys are rejected.
package policyfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

// ErrInvalid is returned for documents that do not describe a valid matrix.
var ErrInvalid = errors.New("policyfile: invalid policy")

// File is the on-disk form of an access matrix.
type File struct {
	Name   string    `yaml:"name,omitempty"`
	Field  string    `yaml:"field,omitempty"`
	Labels []string  `yaml:"labels"`
	Rows   [][]int64 `yaml:"rows,flow"`
}

// Parse decodes a single YAML document.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := f.Matrix(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policyfile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Matrix builds the access matrix described by f.
func (f *File) Matrix() (*lsss.AccessMatrix, error) {
	labels := make([]lsss.Attribute, len(f.Labels))
	for i, l := range f.Labels {
		labels[i] = lsss.Attribute(l)
	}
	m, err := lsss.NewAccessMatrix(f.Rows, labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return m, nil
}

// FromMatrix returns the File form of m.
func FromMatrix(name, field string, m *lsss.AccessMatrix) *File {
	labels := m.Labels()
	out := &File{Name: name, Field: field, Labels: make([]string, len(labels)), Rows: m.Entries()}
	for i, l := range labels {
		out.Labels[i] = string(l)
	}
	return out
}

// Marshal encodes f with two-space indentation.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("policyfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("policyfile: encode: %w", err)
	}
	return buf.Bytes(), nil
}
