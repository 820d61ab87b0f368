package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// importsOf returns the import paths of the non-test Go files in dir.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	out := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			out[path] = append(out[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return out
}

// TestCoreImportsOnly verifies pkg/core only imports allowed packages.
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
func TestCoreImportsOnly(t *testing.T) {
	allowed := map[string]bool{
		"github.com/leapstack-labs/sqlseg/pkg/token": true,
	}

	for file, imports := range importsOf(t, ".") {
		for _, imp := range imports {
			// stdlib has no dot in the first path element
			if !strings.Contains(imp, ".") {
				continue
			}
			if !allowed[imp] {
				t.Errorf("%s imports forbidden package: %s", file, imp)
			}
		}
	}
}

// TestPublicPackagesDoNotImportInternal verifies nothing under pkg/ reaches
// into internal/, so the library can be used without the CLI.
func TestPublicPackagesDoNotImportInternal(t *testing.T) {
	err := filepath.WalkDir("..", func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		for file, imports := range importsOf(t, path) {
			for _, imp := range imports {
				if strings.Contains(imp, "/internal/") {
					t.Errorf("%s imports internal package: %s", file, imp)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk pkg: %v", err)
	}
}
