package parser_test

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisptest"
	"github.com/TK-A369/tk-lisp-test-1/parser"
)

const fixtureDir = "../lisptest/testdata"

func BenchmarkParser(b *testing.B) {
	files, err := filepath.Glob(filepath.Join(fixtureDir, "*.lisp"))
	if err != nil {
		b.Fatalf("Failed to list test fixtures: %v", err)
	}
	sort.Strings(files) // should be redundant
	for _, path := range files {
		b.Run(filepath.Base(path), lisptest.BenchmarkParse(path, parser.NewReader))
	}
}
