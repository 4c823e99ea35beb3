package tui

const (
	tableVerticalPadding = 4
	splitPanelPadding    = 2
	borderPadding        = 6

	methodColumnWidth = 8
	statusColumnWidth = 8
	folderColumnWidth = 24
	minURLColumnWidth = 20
	maxURLColumnWidth = 80

	maxBodyDisplayLength = 4000
)
