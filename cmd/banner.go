package cmd

import (
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/testforge/testforge/tui"
)

const testforgeASCII = ` _            _    __
| |_ ___  ___| |_ / _| ___  _ __ __ _  ___
| __/ _ \/ __| __| |_ / _ \| '__/ _' |/ _ \
| ||  __/\__ \ |_|  _| (_) | | | (_| |  __/
 \__\___||___/\__|_|  \___/|_|  \__, |\___|
                                |___/`

// RenderBanner returns the styled testforge banner for the help screen
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(tui.RGBBlue).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(tui.RGBGrey).
		Italic(true)

	containerStyle := lipgloss.NewStyle().
		MarginBottom(1)

	banner := bannerStyle.Render(testforgeASCII)
	subtitle := subtitleStyle.Render("turn Postman collections into test suites")

	return containerStyle.Render(banner + "\n" + subtitle)
}
