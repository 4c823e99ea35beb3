package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/testforge/testforge/tui"
)

func LaunchTUI(collectionFile string) error {
	analysis, err := AnalyzeCollection(collectionFile, GetLogger())
	if err != nil {
		return err
	}

	model := tui.NewBrowserModel(collectionFile, analysis)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
