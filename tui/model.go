package tui

import (
	"github.com/charmbracelet/bubbles/v2/table"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/testforge/testforge/analyzer"
)

// ViewMode represents the browser view states
type ViewMode int

const (
	ViewModeTable ViewMode = iota
	ViewModeTableWithSplit
)

// BrowserModel drives the terminal endpoint browser: a table of all
// endpoints extracted from a collection, with a detail split for the
// selected one.
type BrowserModel struct {
	table   table.Model
	columns []table.Column
	rows    []table.Row

	analysis  *analyzer.Analysis
	endpoints []*analyzer.Endpoint

	selectedIndex int
	selected      *analyzer.Endpoint

	viewMode     ViewMode
	splitVisible bool
	width        int
	height       int
	ready        bool
	quitting     bool

	requestViewport  viewport.Model
	responseViewport viewport.Model

	fileName string
}

// NewBrowserModel creates the browser for an already-analyzed collection.
// The pipeline is synchronous, so there is no loading state to drive.
func NewBrowserModel(fileName string, analysis *analyzer.Analysis) *BrowserModel {
	columns := []table.Column{
		{Title: "Method", Width: methodColumnWidth},
		{Title: "URL", Width: maxURLColumnWidth},
		{Title: "Folder", Width: folderColumnWidth},
		{Title: "Status", Width: statusColumnWidth},
	}

	return &BrowserModel{
		fileName:      fileName,
		analysis:      analysis,
		endpoints:     analysis.Endpoints,
		columns:       columns,
		viewMode:      ViewModeTable,
		selectedIndex: 0,
	}
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.initializeTable()
			m.ready = true
		} else {
			m.updateTableDimensions()
		}

		if m.splitVisible {
			m.updateViewportDimensions()
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter", "return":
			m.toggleSplitView()
			if m.splitVisible {
				m.loadSelectedEndpoint()
			}
			return m, nil

		case "esc":
			if m.splitVisible {
				m.splitVisible = false
				m.viewMode = ViewModeTable
				m.updateTableDimensions()
			}
			return m, nil
		}
	}

	if !m.splitVisible {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)

		if m.table.Cursor() != m.selectedIndex {
			m.selectedIndex = m.table.Cursor()
		}
	} else {
		m.requestViewport, cmd = m.requestViewport.Update(msg)
		cmds = append(cmds, cmd)

		m.responseViewport, cmd = m.responseViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	return m.render()
}

func (m *BrowserModel) initializeTable() {
	m.buildTableRows()

	m.table = table.New(
		table.WithColumns(m.columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
		table.WithWidth(m.width),
	)

	m.table = ApplyTableStyles(m.table)
}

func (m *BrowserModel) tableHeight() int {
	h := m.height - tableVerticalPadding
	if m.splitVisible {
		h = (m.height - tableVerticalPadding) / 2
	}
	return h
}

func (m *BrowserModel) updateTableDimensions() {
	m.table.SetHeight(m.tableHeight())
	m.table.SetWidth(m.width)
	m.adjustColumnWidths()
}

func (m *BrowserModel) adjustColumnWidths() {
	urlWidth := m.width - methodColumnWidth - folderColumnWidth - statusColumnWidth - borderPadding
	if urlWidth < minURLColumnWidth {
		urlWidth = minURLColumnWidth
	}
	if urlWidth > maxURLColumnWidth {
		urlWidth = maxURLColumnWidth
	}

	m.columns[0].Width = methodColumnWidth
	m.columns[1].Width = urlWidth
	m.columns[2].Width = folderColumnWidth
	m.columns[3].Width = statusColumnWidth

	m.table.SetColumns(m.columns)
}

func (m *BrowserModel) updateViewportDimensions() {
	splitHeight := (m.height-tableVerticalPadding)/2 - splitPanelPadding
	splitWidth := (m.width / 2) - splitPanelPadding

	if m.requestViewport.Width() == 0 {
		m.requestViewport = viewport.New(viewport.WithWidth(splitWidth), viewport.WithHeight(splitHeight))
		m.responseViewport = viewport.New(viewport.WithWidth(splitWidth), viewport.WithHeight(splitHeight))
	} else {
		m.requestViewport.SetWidth(splitWidth)
		m.requestViewport.SetHeight(splitHeight)
		m.responseViewport.SetWidth(splitWidth)
		m.responseViewport.SetHeight(splitHeight)
	}
}

func (m *BrowserModel) toggleSplitView() {
	if m.viewMode == ViewModeTable {
		m.viewMode = ViewModeTableWithSplit
		m.splitVisible = true
		m.updateTableDimensions()
		m.updateViewportDimensions()
	} else {
		m.viewMode = ViewModeTable
		m.splitVisible = false
		m.updateTableDimensions()
	}
}

func (m *BrowserModel) loadSelectedEndpoint() {
	if m.selectedIndex >= len(m.endpoints) {
		return
	}
	m.selected = m.endpoints[m.selectedIndex]
	m.updateViewportContent()
}
