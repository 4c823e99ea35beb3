package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// pre-computed styles to avoid allocation while rendering detail panels
var (
	keyStyleBase = lipgloss.NewStyle().
			Foreground(RGBGrey).
			Align(lipgloss.Right)

	sectionHeaderStyleBase = lipgloss.NewStyle().
				Bold(true).
				Foreground(RGBBlue)

	emptyValueText = lipgloss.NewStyle().Faint(true).Render("(empty)")
)

// KeyValuePair is a single key-value row in a detail panel.
type KeyValuePair struct {
	Key   string
	Value string
}

// Section groups key-value pairs under a header.
type Section struct {
	Title string
	Pairs []KeyValuePair
}

// pairsFromMap converts a map into key-sorted pairs for stable display.
func pairsFromMap(m map[string]string) []KeyValuePair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]KeyValuePair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, KeyValuePair{Key: k, Value: m[k]})
	}
	return pairs
}

// renderSections renders sections as aligned key-value output for a panel
// of the given width.
func renderSections(sections []Section, width int) string {
	if len(sections) == 0 {
		return ""
	}

	keyWidth := width * 3 / 10
	if keyWidth > 25 {
		keyWidth = 25
	}
	if keyWidth < 12 {
		keyWidth = 12
	}
	valueWidth := width - keyWidth - 3

	var output strings.Builder
	for i, section := range sections {
		if section.Title != "" {
			output.WriteString(sectionHeaderStyleBase.Render(section.Title))
			output.WriteString("\n")
		}
		for _, pair := range section.Pairs {
			output.WriteString(renderKeyValueRow(pair, keyWidth, valueWidth))
			output.WriteString("\n")
		}
		if i < len(sections)-1 {
			output.WriteString("\n")
		}
	}
	return output.String()
}

func renderKeyValueRow(pair KeyValuePair, keyWidth, valueWidth int) string {
	key := truncateString(pair.Key, keyWidth)
	value := pair.Value
	if value == "" {
		value = emptyValueText
	} else if valueWidth > 3 {
		value = truncateString(value, valueWidth)
	}
	return keyStyleBase.Width(keyWidth).Render(key) + "  " + value
}
