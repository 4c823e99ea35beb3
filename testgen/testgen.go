// Package testgen emits ready-to-run test-suite scaffolding from analyzed
// collections and scanned pages: HTTP assertion tests, UI automation
// skeletons and plain-text test-case documents. Generators are pure
// string-template emitters; writing files is the only I/O.
package testgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/testforge/testforge/analyzer"
)

// SuiteKind selects which artifacts to generate.
type SuiteKind string

const (
	SuiteAPI   SuiteKind = "api"
	SuiteCases SuiteKind = "cases"
)

// Options configures generation.
type Options struct {
	// OutputDir receives the generated files. Created when missing.
	OutputDir string

	// PackageName for generated Go test sources.
	PackageName string

	// Enhance adds the rule-based extra test cases to the emitted suites.
	Enhance bool

	// Suites to generate; empty means all of them.
	Suites []SuiteKind
}

// DefaultOptions provides sensible defaults.
var DefaultOptions = Options{
	OutputDir:   "testforge-out",
	PackageName: "generated",
	Enhance:     true,
}

// Result lists what a generation run produced.
type Result struct {
	// Paths of all written files.
	Paths []string
}

// GenerateAll renders the selected suites for one analysis and writes them
// to the output directory.
func GenerateAll(analysis *analyzer.Analysis, opts Options) (*Result, error) {
	applyDefaults(&opts)

	suites := opts.Suites
	if len(suites) == 0 {
		suites = []SuiteKind{SuiteAPI, SuiteCases}
	}

	base := fileBase(analysis.CollectionName)
	result := &Result{}

	for _, suite := range suites {
		var (
			content string
			name    string
			err     error
		)
		switch suite {
		case SuiteAPI:
			content, err = GenerateAPISuite(analysis, opts)
			name = base + "_api_test.go"
		case SuiteCases:
			content = GenerateTestCases(analysis, opts)
			name = base + "_test_cases.txt"
		default:
			return nil, fmt.Errorf("unknown suite kind: %s", suite)
		}
		if err != nil {
			return nil, err
		}

		path, err := WriteSuite(opts.OutputDir, name, content)
		if err != nil {
			return nil, err
		}
		result.Paths = append(result.Paths, path)
	}

	return result, nil
}

// WriteSuite writes one generated artifact, creating the directory first.
func WriteSuite(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing suite file: %w", err)
	}
	return path, nil
}

func applyDefaults(opts *Options) {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOptions.OutputDir
	}
	if opts.PackageName == "" {
		opts.PackageName = DefaultOptions.PackageName
	}
}

// fileBase derives a filesystem-friendly base name from a collection name.
func fileBase(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "_"):
			b.WriteRune('_')
		}
	}
	base := strings.Trim(b.String(), "_")
	if base == "" {
		base = "collection"
	}
	return base
}

// identifier derives an exported Go identifier from an endpoint name.
func identifier(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Unnamed"
	}
	id := b.String()
	if unicode.IsDigit(rune(id[0])) {
		id = "X" + id
	}
	return id
}
