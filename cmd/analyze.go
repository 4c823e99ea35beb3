package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <collection.json>",
	Short: "Analyze a collection and list the extracted endpoints",
	Long: `Parse a Postman collection, normalize every request into an endpoint
record and print a summary plus the endpoint listing. Use --json to dump
the records as JSON for consumption by other tools.`,
	Args: cobra.ExactArgs(1),
	Example: `  testforge analyze collection.json
  testforge analyze collection.json --json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print endpoint records as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	collectionFile := args[0]
	if err := ValidateInputFile(collectionFile); err != nil {
		return err
	}

	analysis, err := AnalyzeCollection(collectionFile, GetLogger())
	if err != nil {
		return err
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(analysis.Endpoints)
	}

	fmt.Printf("Collection: %s\n", analysis.CollectionName)
	fmt.Printf("Schema:     %s\n", analysis.Schema)
	fmt.Printf("Endpoints:  %d (%d unique URLs)\n", analysis.TotalEndpoints, analysis.UniqueURLs)

	if len(analysis.MethodCounts) > 0 {
		methods := make([]string, 0, len(analysis.MethodCounts))
		for m := range analysis.MethodCounts {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		fmt.Printf("Methods:   ")
		for _, m := range methods {
			fmt.Printf(" %s=%d", m, analysis.MethodCounts[m])
		}
		fmt.Println()
	}
	fmt.Println()

	for _, ep := range analysis.Endpoints {
		fmt.Printf("  • %s\n", ep.Summary())
	}

	return nil
}
