package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	libraryPattern = "github.com/hsiuhsiu/lsss-go/pkg/lsss/..."
	corePattern    = "github.com/hsiuhsiu/lsss-go/pkg/lsss"
	fieldPattern   = "github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
	linalgPattern  = "github.com/hsiuhsiu/lsss-go/pkg/lsss/linalg"
)

func loadLibrary(t *testing.T, patterns ...string) []*packages.Package {
	t.Helper()
	if len(patterns) == 0 {
		patterns = []string{libraryPattern}
	}
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages %v contain errors", patterns)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %v", patterns)
	}
	return pkgs
}
