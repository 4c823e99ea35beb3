// Package scanner inspects static HTML documents for testable page
// elements. It is a thin wrapper over goquery selectors: no HTTP fetching,
// no script execution, just a single pass over the parsed DOM.
package scanner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Kind classifies a scanned page element.
type Kind string

const (
	KindInput    Kind = "input"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindButton   Kind = "button"
	KindLink     Kind = "link"
)

// Element is one testable element found on a page.
type Element struct {
	// Kind of the element.
	Kind Kind

	// ID attribute, when present.
	ID string

	// Name attribute, when present.
	Name string

	// Type attribute for inputs and buttons, e.g. "text" or "submit".
	Type string

	// Selector is the best-available CSS selector for the element:
	// #id, then [name=...], then tag:nth-of-type.
	Selector string

	// Label is the associated <label> text, or the trimmed element text for
	// links and buttons.
	Label string
}

// Form groups the fields found inside one <form> element.
type Form struct {
	// Selector addressing the form itself.
	Selector string

	// Action attribute of the form.
	Action string

	// Method attribute of the form, uppercased, default "GET".
	Method string

	// Fields inside the form, in document order.
	Fields []Element
}

// ScanResult is the outcome of scanning one page.
type ScanResult struct {
	// Title of the page, from <title>.
	Title string

	// Elements found on the page, in document order.
	Elements []Element

	// Forms found on the page with their fields.
	Forms []Form

	// Counts tallies elements per kind.
	Counts map[Kind]int
}

// ScanFile scans an HTML document read from disk.
func ScanFile(path string) (*ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page file: %w", err)
	}
	defer f.Close()
	return ScanReader(f)
}

// ScanHTML scans an in-memory HTML document.
func ScanHTML(doc string) (*ScanResult, error) {
	return ScanReader(strings.NewReader(doc))
}

// ScanReader scans an HTML document from a reader.
func ScanReader(r io.Reader) (*ScanResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page HTML: %w", err)
	}

	s := &pageScan{
		labels:    collectLabels(doc),
		tagCounts: make(map[string]int),
		result: &ScanResult{
			Title:  strings.TrimSpace(doc.Find("title").First().Text()),
			Counts: make(map[Kind]int),
		},
	}

	doc.Find("input, textarea, select, button, a[href]").Each(func(_ int, sel *goquery.Selection) {
		s.addElement(sel)
	})

	doc.Find("form").Each(func(_ int, sel *goquery.Selection) {
		s.addForm(sel)
	})

	return s.result, nil
}

type pageScan struct {
	labels    map[string]string
	tagCounts map[string]int
	result    *ScanResult
}

func (s *pageScan) addElement(sel *goquery.Selection) {
	el := s.buildElement(sel)
	s.result.Elements = append(s.result.Elements, el)
	s.result.Counts[el.Kind]++
}

func (s *pageScan) buildElement(sel *goquery.Selection) Element {
	tag := goquery.NodeName(sel)
	s.tagCounts[tag]++

	el := Element{
		Kind: kindForTag(tag),
		ID:   sel.AttrOr("id", ""),
		Name: sel.AttrOr("name", ""),
		Type: sel.AttrOr("type", ""),
	}
	el.Selector = s.selectorFor(tag, el.ID, el.Name)
	el.Label = s.labelFor(sel, el)
	return el
}

func (s *pageScan) addForm(sel *goquery.Selection) {
	tag := goquery.NodeName(sel)
	s.tagCounts[tag]++

	form := Form{
		Selector: s.selectorFor(tag, sel.AttrOr("id", ""), sel.AttrOr("name", "")),
		Action:   sel.AttrOr("action", ""),
		Method:   strings.ToUpper(sel.AttrOr("method", "GET")),
	}
	sel.Find("input, textarea, select, button").Each(func(_ int, field *goquery.Selection) {
		// form fields were already counted during the page pass; rebuild the
		// selector from attributes without bumping the tag counters again
		form.Fields = append(form.Fields, Element{
			Kind:     kindForTag(goquery.NodeName(field)),
			ID:       field.AttrOr("id", ""),
			Name:     field.AttrOr("name", ""),
			Type:     field.AttrOr("type", ""),
			Selector: staticSelectorFor(goquery.NodeName(field), field.AttrOr("id", ""), field.AttrOr("name", "")),
			Label:    s.labelFor(field, Element{ID: field.AttrOr("id", "")}),
		})
	})

	s.result.Forms = append(s.result.Forms, form)
}

// selectorFor prefers a stable attribute selector and falls back to a
// positional one based on how many elements of the tag were seen so far.
func (s *pageScan) selectorFor(tag, id, name string) string {
	if sel := staticSelectorFor(tag, id, name); sel != "" {
		return sel
	}
	return fmt.Sprintf("%s:nth-of-type(%d)", tag, s.tagCounts[tag])
}

func staticSelectorFor(tag, id, name string) string {
	if id != "" {
		return "#" + id
	}
	if name != "" {
		return fmt.Sprintf("%s[name=%q]", tag, name)
	}
	return ""
}

func (s *pageScan) labelFor(sel *goquery.Selection, el Element) string {
	if el.ID != "" {
		if label, ok := s.labels[el.ID]; ok {
			return label
		}
	}
	switch goquery.NodeName(sel) {
	case "a", "button":
		return strings.TrimSpace(sel.Text())
	}
	return ""
}

func collectLabels(doc *goquery.Document) map[string]string {
	labels := make(map[string]string)
	doc.Find("label[for]").Each(func(_ int, sel *goquery.Selection) {
		target := sel.AttrOr("for", "")
		if target != "" {
			labels[target] = strings.TrimSpace(sel.Text())
		}
	})
	return labels
}

func kindForTag(tag string) Kind {
	switch tag {
	case "textarea":
		return KindTextarea
	case "select":
		return KindSelect
	case "button":
		return KindButton
	case "a":
		return KindLink
	default:
		return KindInput
	}
}
