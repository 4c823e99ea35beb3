package testgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/testforge/testforge/analyzer"
)

// GenerateTestCases renders a plain-text test-case document for one
// analysis: a numbered happy-path case per endpoint, plus the applicable
// enhancement scenarios.
func GenerateTestCases(analysis *analyzer.Analysis, opts Options) string {
	applyDefaults(&opts)

	var b strings.Builder
	fmt.Fprintf(&b, "Test Cases: %s\n", analysis.CollectionName)
	fmt.Fprintf(&b, "Endpoints: %d\n", analysis.TotalEndpoints)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	n := 0
	for _, ep := range analysis.Endpoints {
		n++
		writeHappyPathCase(&b, n, ep)

		if !opts.Enhance {
			continue
		}
		for _, enh := range EnhancementsFor(ep) {
			n++
			writeEnhancementCase(&b, n, ep, enh)
		}
	}

	if n == 0 {
		b.WriteString("No endpoints found in the collection.\n")
	}
	return b.String()
}

func writeHappyPathCase(b *strings.Builder, n int, ep *analyzer.Endpoint) {
	fmt.Fprintf(b, "TC-%03d: %s\n", n, ep.ShortName())
	if ep.FolderPath != "" {
		fmt.Fprintf(b, "  Folder:   %s\n", ep.FolderPath)
	}
	fmt.Fprintf(b, "  Request:  %s %s\n", ep.Method, ep.URL)

	for _, h := range sortedHeaders(ep.Headers) {
		fmt.Fprintf(b, "  Header:   %s: %s\n", h.Key, h.Value)
	}
	if len(ep.QueryParams) > 0 {
		keys := make([]string, 0, len(ep.QueryParams))
		for k := range ep.QueryParams {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "  Query:    %s=%s\n", k, ep.QueryParams[k])
		}
	}
	if ep.RequestBody != "" {
		fmt.Fprintf(b, "  Body (%s): %s\n", ep.RequestBodyType, ep.RequestBody)
	}
	if ep.Description != "" {
		fmt.Fprintf(b, "  Notes:    %s\n", ep.Description)
	}
	fmt.Fprintf(b, "  Expect:   status %d\n\n", ep.ExpectedStatus())
}

func writeEnhancementCase(b *strings.Builder, n int, ep *analyzer.Endpoint, enh EnhancementCase) {
	fmt.Fprintf(b, "TC-%03d: %s - %s\n", n, ep.ShortName(), enh.Name)
	fmt.Fprintf(b, "  Step:     %s\n", enh.Description)
	fmt.Fprintf(b, "  Request:  %s %s\n", ep.Method, ep.URL)
	fmt.Fprintf(b, "  Expect:   status %d\n\n", enh.ExpectedStatus)
}
