package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/testgen"
)

var (
	genOutputDir string
	genSuites    []string
	genPackage   string
	genEnhance   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <collection.json>",
	Short: "Generate test suites from a collection",
	Long: `Analyze a collection and emit ready-to-run test scaffolding: a Go HTTP
assertion suite and a plain-text test-case document. The rule-based
enhancement catalog adds negative cases (missing auth, unknown ids,
malformed bodies, empty query values) per endpoint.`,
	Args: cobra.ExactArgs(1),
	Example: `  testforge generate collection.json
  testforge generate collection.json -o generated --suite api
  testforge generate collection.json --enhance=false`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genOutputDir, "output", "o", "testforge-out", "Output directory for generated suites")
	generateCmd.Flags().StringSliceVar(&genSuites, "suite", []string{}, "Suites to generate: api,cases (default: all)")
	generateCmd.Flags().StringVar(&genPackage, "package", "generated", "Package name for generated Go test sources")
	generateCmd.Flags().BoolVar(&genEnhance, "enhance", true, "Include rule-based extra test cases")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	collectionFile := args[0]
	if err := ValidateInputFile(collectionFile); err != nil {
		return err
	}

	var suites []testgen.SuiteKind
	for _, s := range genSuites {
		switch strings.ToLower(s) {
		case "api":
			suites = append(suites, testgen.SuiteAPI)
		case "cases", "testcases":
			suites = append(suites, testgen.SuiteCases)
		case "all":
			suites = nil
		default:
			return fmt.Errorf("unknown suite kind: %s", s)
		}
	}

	analysis, err := AnalyzeCollection(collectionFile, GetLogger())
	if err != nil {
		return err
	}

	opts := testgen.Options{
		OutputDir:   genOutputDir,
		PackageName: genPackage,
		Enhance:     genEnhance,
		Suites:      suites,
	}

	result, err := testgen.GenerateAll(analysis, opts)
	if err != nil {
		return fmt.Errorf("failed to generate suites: %w", err)
	}

	fmt.Printf("Generated %d suite file(s) from %q:\n", len(result.Paths), analysis.CollectionName)
	for _, path := range result.Paths {
		fmt.Printf("  ✓ %s\n", path)
	}

	return nil
}
