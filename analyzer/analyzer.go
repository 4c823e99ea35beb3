// Package analyzer parses Postman Collection v2.x documents into a flat,
// de-referenced list of endpoint records. The pipeline is a single-pass,
// synchronous tree transform: the loader validates the document shape, the
// walker recurses over folders threading variable scopes downward, and the
// request parser normalizes each leaf into an Endpoint.
//
// Failures are two-tier: a document that is not a usable collection at all
// surfaces as a CollectionFormatError, while individual malformed nodes are
// logged and skipped so one bad request never aborts the whole parse.
package analyzer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/testforge/testforge/analyzer/model"
)

// schemaV2Marker gates supported collection format versions; only v2.x
// schema URLs contain it.
const schemaV2Marker = "v2"

// Analyzer runs the collection analysis pipeline. It holds no per-call
// state; every analysis is independent.
type Analyzer struct {
	logger *slog.Logger
}

// New creates an Analyzer logging node-level skips through the provided
// logger. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analysis is the result of analyzing one collection: the ordered endpoint
// list plus summary fields computed in the same pass.
type Analysis struct {
	// CollectionName from info.name, DefaultCollectionName when absent.
	CollectionName string

	// Schema is the raw info.schema URL of the document.
	Schema string

	// Fingerprint is the xxhash of the document text, hex encoded.
	Fingerprint string

	// Endpoints in document (depth-first, pre-order) order.
	Endpoints []*Endpoint

	// TotalEndpoints is len(Endpoints).
	TotalEndpoints int

	// UniqueURLs counts distinct endpoint URLs.
	UniqueURLs int

	// MethodCounts tallies endpoints per HTTP method.
	MethodCounts map[string]int

	// BuildTime is how long the analysis took.
	BuildTime time.Duration
}

// AnalyzeCollectionFile reads a collection document from disk and analyzes
// it. Unreadable files surface as a CollectionFormatError wrapping the
// underlying cause.
func (a *Analyzer) AnalyzeCollectionFile(path string) (*Analysis, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &CollectionFormatError{Message: "collection path is empty"}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CollectionFormatError{Message: "reading collection file", Cause: err}
	}
	return a.AnalyzeCollection(string(data))
}

// AnalyzeCollection analyzes an in-memory collection document. It fails
// with a CollectionFormatError when the input is blank, is not JSON, has no
// info.schema field, or declares a schema other than v2.x. A collection
// without an item array yields an empty result with a warning.
func (a *Analyzer) AnalyzeCollection(doc string) (*Analysis, error) {
	start := time.Now()

	if strings.TrimSpace(doc) == "" {
		return nil, &CollectionFormatError{Message: "collection document is empty"}
	}

	var col model.Collection
	if err := json.Unmarshal([]byte(doc), &col); err != nil {
		return nil, &CollectionFormatError{Message: "parsing collection JSON", Cause: err}
	}

	if col.Info.Schema == "" {
		return nil, &CollectionFormatError{Message: "collection has no info.schema field"}
	}
	if !strings.Contains(col.Info.Schema, schemaV2Marker) {
		return nil, &CollectionFormatError{
			Message: fmt.Sprintf("unsupported collection schema %q: only v2.x collections are supported", col.Info.Schema),
		}
	}

	name := col.Info.Name
	if name == "" {
		name = DefaultCollectionName
	}

	analysis := &Analysis{
		CollectionName: name,
		Schema:         col.Info.Schema,
		Fingerprint:    fmt.Sprintf("%016x", xxhash.Sum64String(doc)),
		MethodCounts:   make(map[string]int),
	}

	if len(col.Items) == 0 || string(col.Items) == "null" {
		a.logger.Warn("collection has no item array", "collection", name)
		analysis.Endpoints = []*Endpoint{}
	} else {
		collectionVars := variablesToMap(col.Variables)
		analysis.Endpoints = a.walk(col.Items, "", name, collectionVars, map[string]string{})
		if analysis.Endpoints == nil {
			analysis.Endpoints = []*Endpoint{}
		}
	}

	urls := make(map[string]struct{}, len(analysis.Endpoints))
	for _, ep := range analysis.Endpoints {
		analysis.MethodCounts[ep.Method]++
		urls[ep.URL] = struct{}{}
	}
	analysis.TotalEndpoints = len(analysis.Endpoints)
	analysis.UniqueURLs = len(urls)
	analysis.BuildTime = time.Since(start)

	a.logger.Debug("collection analyzed",
		"collection", name,
		"endpoints", analysis.TotalEndpoints,
		"unique_urls", analysis.UniqueURLs,
		"build_time", analysis.BuildTime)

	return analysis, nil
}

// variablesToMap flattens a variable array into a scope map, skipping
// entries with an empty key.
func variablesToMap(vars []model.Variable) map[string]string {
	scope := make(map[string]string, len(vars))
	for _, v := range vars {
		if v.Key == "" {
			continue
		}
		scope[v.Key] = v.Value
	}
	return scope
}
