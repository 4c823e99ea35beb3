package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/table"

	"github.com/testforge/testforge/analyzer"
)

func (m *BrowserModel) buildTableRows() {
	rows := make([]table.Row, 0, len(m.endpoints))
	for _, ep := range m.endpoints {
		rows = append(rows, formatEndpointRow(ep, m.width))
	}
	m.rows = rows
}

func formatEndpointRow(ep *analyzer.Endpoint, terminalWidth int) table.Row {
	method := formatMethod(ep.Method)
	url := formatRowURL(ep.URL, terminalWidth)
	folder := truncateString(ep.FolderPath, folderColumnWidth)
	status := fmt.Sprintf("%d", ep.ExpectedStatus())

	return table.Row{method, url, folder, status}
}

func formatMethod(method string) string {
	if method == "" {
		method = analyzer.DefaultMethod
	}
	if len(method) > 7 {
		return method[:7]
	}
	return method
}

func formatRowURL(url string, terminalWidth int) string {
	if url == "" {
		return "/"
	}

	availableWidth := terminalWidth - methodColumnWidth - folderColumnWidth - statusColumnWidth - borderPadding
	if availableWidth < minURLColumnWidth {
		availableWidth = minURLColumnWidth
	}
	if availableWidth > maxURLColumnWidth {
		availableWidth = maxURLColumnWidth
	}

	return truncateString(url, availableWidth)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
