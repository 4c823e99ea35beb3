package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/testforge/testforge/analyzer"
)

func (m *BrowserModel) render() string {
	if m.viewMode == ViewModeTableWithSplit {
		return m.renderSplitView()
	}
	return m.renderTableView()
}

func (m *BrowserModel) renderTableView() string {
	var builder strings.Builder

	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *BrowserModel) renderSplitView() string {
	var builder strings.Builder

	builder.WriteString(m.renderTitle())
	builder.WriteString("\n")
	builder.WriteString(m.table.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderSplitPanel())
	builder.WriteString("\n")
	builder.WriteString(m.renderStatusBar())

	return builder.String()
}

func (m *BrowserModel) renderTitle() string {
	title := fmt.Sprintf("testforge: %s | %s ", m.fileName, m.analysis.CollectionName)
	titleStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		Padding(0, 1).
		Width(m.width).
		BorderForeground(RGBBlue).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderBottom(true)

	titleText := lipgloss.NewStyle().Bold(true).Render(title)

	count := fmt.Sprintf("(%d endpoints", len(m.endpoints))
	if m.analysis.BuildTime > 0 {
		count += fmt.Sprintf(", analyzed in %v", m.analysis.BuildTime.Round(time.Microsecond))
	}
	count += ")"

	countStyle := lipgloss.NewStyle().Faint(true)
	return titleStyle.Render(titleText + countStyle.Render(count))
}

func (m *BrowserModel) renderStatusBar() string {
	var parts []string

	if m.viewMode == ViewModeTable {
		parts = append(parts, "↑/↓: Navigate")
		parts = append(parts, "Enter: View Details")
	} else {
		parts = append(parts, "↑/↓: Scroll")
		parts = append(parts, "Esc: Close Details")
	}
	parts = append(parts, "q: Quit")

	if m.selectedIndex < len(m.endpoints) {
		parts = append(parts, fmt.Sprintf("Endpoint %d/%d", m.selectedIndex+1, len(m.endpoints)))
	}

	return HelpStyle.Render(strings.Join(parts, " | "))
}

func (m *BrowserModel) renderSplitPanel() string {
	if m.selected == nil {
		return BorderStyle.Width(m.width - 2).Render("No endpoint selected")
	}

	request := lipgloss.JoinVertical(lipgloss.Left,
		ViewportTitleStyle.Render("Request"),
		BorderStyle.Render(m.requestViewport.View()))

	response := lipgloss.JoinVertical(lipgloss.Left,
		ViewportTitleStyle.Render("Example Response"),
		BorderStyle.Render(m.responseViewport.View()))

	return lipgloss.JoinHorizontal(lipgloss.Top, request, response)
}

func (m *BrowserModel) updateViewportContent() {
	if m.selected == nil {
		return
	}
	width := m.requestViewport.Width()
	m.requestViewport.SetContent(renderRequestDetail(m.selected, width))
	m.responseViewport.SetContent(renderResponseDetail(m.selected, width))
}

func renderRequestDetail(ep *analyzer.Endpoint, width int) string {
	sections := []Section{
		{
			Title: ep.ShortName(),
			Pairs: []KeyValuePair{
				{Key: "Method", Value: ep.Method},
				{Key: "URL", Value: ep.URL},
				{Key: "Folder", Value: ep.FolderPath},
				{Key: "Collection", Value: ep.CollectionName},
			},
		},
	}

	if len(ep.Headers) > 0 {
		sections = append(sections, Section{Title: "Headers", Pairs: pairsFromMap(ep.Headers)})
	}
	if len(ep.QueryParams) > 0 {
		sections = append(sections, Section{Title: "Query Parameters", Pairs: pairsFromMap(ep.QueryParams)})
	}
	if len(ep.FormData) > 0 {
		sections = append(sections, Section{Title: "Form Data", Pairs: pairsFromMap(ep.FormData)})
	}

	detail := renderSections(sections, width)

	if ep.RequestBody != "" {
		detail += "\n" + sectionHeaderStyleBase.Render(fmt.Sprintf("Body (%s)", ep.RequestBodyType)) + "\n"
		detail += truncateBody(ep.RequestBody, maxBodyDisplayLength)
	}
	if ep.TestScript != "" {
		detail += "\n" + sectionHeaderStyleBase.Render("Test Script") + "\n"
		detail += truncateBody(ep.TestScript, maxBodyDisplayLength)
	}
	return detail
}

func renderResponseDetail(ep *analyzer.Endpoint, width int) string {
	if len(ep.ExampleResponses) == 0 {
		return HelpStyle.Render("No example responses recorded.")
	}

	var builder strings.Builder
	for i, ex := range ep.ExampleResponses {
		sections := []Section{
			{
				Title: ex.Name,
				Pairs: []KeyValuePair{
					{Key: "Status", Value: fmt.Sprintf("%d", ex.Code)},
				},
			},
		}
		if len(ex.Headers) > 0 {
			sections = append(sections, Section{Title: "Headers", Pairs: pairsFromMap(ex.Headers)})
		}
		builder.WriteString(renderSections(sections, width))

		if ex.Body != "" {
			builder.WriteString("\n")
			builder.WriteString(sectionHeaderStyleBase.Render("Body"))
			builder.WriteString("\n")
			builder.WriteString(truncateBody(ex.Body, maxBodyDisplayLength))
			builder.WriteString("\n")
		}
		if i < len(ep.ExampleResponses)-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

func truncateBody(content string, maxLen int) string {
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen] + "\n...[truncated]"
}
