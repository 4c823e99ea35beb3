package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/scanner"
	"github.com/testforge/testforge/testgen"
)

var scanUIOut string

var scanCmd = &cobra.Command{
	Use:   "scan <page.html>",
	Short: "Scan a static web page for testable elements",
	Long: `Parse a static HTML document and list the testable elements found on
it: inputs, selects, buttons, links and forms, each with its best
available CSS selector. Use --ui-out to also write a UI automation
skeleton built from the scan.`,
	Args: cobra.ExactArgs(1),
	Example: `  testforge scan login.html
  testforge scan login.html --ui-out ui_suite.txt`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanUIOut, "ui-out", "", "Write a UI test skeleton to this file")
}

func runScan(cmd *cobra.Command, args []string) error {
	pageFile := args[0]
	if err := ValidateInputFile(pageFile); err != nil {
		return err
	}

	result, err := scanner.ScanFile(pageFile)
	if err != nil {
		return fmt.Errorf("failed to scan page: %w", err)
	}

	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Page:     %s\n", title)
	fmt.Printf("Elements: %d (%d forms)\n\n", len(result.Elements), len(result.Forms))

	for _, el := range result.Elements {
		line := fmt.Sprintf("  %-9s %s", el.Kind, el.Selector)
		if el.Label != "" {
			line += fmt.Sprintf("  # %s", el.Label)
		}
		fmt.Println(line)
	}

	if scanUIOut == "" {
		return nil
	}

	suite := testgen.GenerateUISuite(result, testgen.Options{})
	path, err := testgen.WriteSuite(filepath.Dir(scanUIOut), filepath.Base(scanUIOut), suite)
	if err != nil {
		return fmt.Errorf("failed to write UI skeleton: %w", err)
	}
	fmt.Printf("\n  ✓ %s\n", path)

	return nil
}
