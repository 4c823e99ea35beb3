package testgen

import (
	"fmt"
	"strings"

	"github.com/testforge/testforge/scanner"
)

// GenerateUISuite renders a UI automation skeleton from one page scan: a
// fill-and-submit step list per form and a visit check for every link. The
// output is framework-agnostic step text keyed by CSS selector.
func GenerateUISuite(scan *scanner.ScanResult, opts Options) string {
	applyDefaults(&opts)

	var b strings.Builder
	title := scan.Title
	if title == "" {
		title = "Untitled Page"
	}
	fmt.Fprintf(&b, "UI Test Skeleton: %s\n", title)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, form := range scan.Forms {
		fmt.Fprintf(&b, "Scenario: submit form %s\n", form.Selector)
		if form.Action != "" {
			fmt.Fprintf(&b, "  # submits %s %s\n", form.Method, form.Action)
		}

		var submit *scanner.Element
		for j := range form.Fields {
			field := &form.Fields[j]
			switch {
			case field.Kind == scanner.KindButton || field.Type == "submit":
				if submit == nil {
					submit = field
				}
			case field.Kind == scanner.KindSelect:
				fmt.Fprintf(&b, "  select first option in  %s%s\n", field.Selector, labelSuffix(field))
			case field.Kind == scanner.KindTextarea:
				fmt.Fprintf(&b, "  fill                    %s%s\n", field.Selector, labelSuffix(field))
			case field.Type == "checkbox" || field.Type == "radio":
				fmt.Fprintf(&b, "  check                   %s%s\n", field.Selector, labelSuffix(field))
			default:
				fmt.Fprintf(&b, "  fill                    %s%s\n", field.Selector, labelSuffix(field))
			}
		}
		if submit != nil {
			fmt.Fprintf(&b, "  click                   %s%s\n", submit.Selector, labelSuffix(submit))
		}
		fmt.Fprintf(&b, "  assert: no validation errors visible\n")
		if i < len(scan.Forms)-1 {
			b.WriteString("\n")
		}
	}

	links := linksOf(scan)
	if len(links) > 0 {
		if len(scan.Forms) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Scenario: visit links\n")
		for _, link := range links {
			fmt.Fprintf(&b, "  click %s and assert navigation succeeds%s\n", link.Selector, labelSuffix(&link))
		}
	}

	if len(scan.Forms) == 0 && len(links) == 0 {
		b.WriteString("No testable elements found on the page.\n")
	}
	return b.String()
}

func linksOf(scan *scanner.ScanResult) []scanner.Element {
	var links []scanner.Element
	for _, el := range scan.Elements {
		if el.Kind == scanner.KindLink {
			links = append(links, el)
		}
	}
	return links
}

func labelSuffix(el *scanner.Element) string {
	if el.Label == "" {
		return ""
	}
	return fmt.Sprintf("  # %s", el.Label)
}
