package cmd

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <collection.json>",
	Short: "Browse a collection's endpoints in the terminal UI",
	Long: `Analyze a Postman collection and open the interactive terminal
browser. Use the arrow keys to move through endpoints and enter to
inspect request and response detail side by side.`,
	Args:    cobra.ExactArgs(1),
	Example: `  testforge view api_collection.json`,
	RunE:    runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	collectionFile := args[0]
	if err := ValidateInputFile(collectionFile); err != nil {
		return err
	}
	return LaunchTUI(collectionFile)
}
