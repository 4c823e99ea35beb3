package analyzer

import "fmt"

// Default values applied while normalizing collection nodes.
const (
	DefaultCollectionName = "Unnamed Collection"
	DefaultRequestName    = "Unnamed Request"
	DefaultExampleName    = "Example Response"
	DefaultMethod         = "GET"
	DefaultStatusCode     = 200
)

// Request body classification tags.
const (
	BodyTypeRaw        = "raw"
	BodyTypeJSON       = "json"
	BodyTypeURLEncoded = "urlencoded"
	BodyTypeFormData   = "formdata"
)

// Endpoint is the normalized, flattened representation of one HTTP request
// extracted from a collection. Records are built once by the parser and not
// mutated afterwards.
type Endpoint struct {
	// Name of the request, DefaultRequestName when absent in the document.
	Name string

	// Method is the uppercase HTTP verb, DefaultMethod when absent.
	Method string

	// URL is the reconstructed host+path when both were derived from the
	// structured form, otherwise the raw URL string as authored.
	URL string

	// Host is the protocol-qualified hostname reconstructed from the
	// structured URL form, empty for plain-string URLs.
	Host string

	// Path is the "/"-joined path reconstructed from the structured URL
	// form, empty for plain-string URLs.
	Path string

	// QueryParams holds enabled query parameters from the structured URL form.
	QueryParams map[string]string

	// Headers holds enabled request headers, values variable-substituted.
	Headers map[string]string

	// RequestBody is the raw payload text, variable-substituted. Empty for
	// form modes.
	RequestBody string

	// RequestBodyType classifies the payload: BodyTypeRaw, BodyTypeJSON,
	// BodyTypeURLEncoded, BodyTypeFormData, a raw language hint, or empty
	// when the request carries no extractable body.
	RequestBodyType string

	// FormData holds enabled form fields for the urlencoded/formdata modes.
	FormData map[string]string

	// FolderPath is the "/"-joined breadcrumb of ancestor folder names,
	// empty for top-level requests.
	FolderPath string

	// CollectionName is inherited from the document's info.name.
	CollectionName string

	// ExampleResponses are the recorded example responses, in document order.
	ExampleResponses []ExampleResponse

	// TestScript is the newline-joined content of the last test event hook,
	// empty when the item has none.
	TestScript string

	// Description of the request, plain text.
	Description string
}

// ExampleResponse is one recorded example response on an endpoint.
type ExampleResponse struct {
	// Name of the example, DefaultExampleName when absent.
	Name string

	// Code is the recorded HTTP status, DefaultStatusCode when absent.
	Code int

	// Body is the raw response body text.
	Body string

	// JSONBody is the parsed body, populated only when the body looks like
	// JSON and parses cleanly; nil otherwise.
	JSONBody any

	// Headers recorded with the example response.
	Headers map[string]string
}

// ShortName returns the request name, or a "METHOD path" form when the
// document did not name the request.
func (e *Endpoint) ShortName() string {
	if e.Name != "" && e.Name != DefaultRequestName {
		return e.Name
	}
	if e.Path != "" {
		return e.Method + " " + e.Path
	}
	return e.Method + " " + e.URL
}

// ExpectedStatus returns the status code of the first example response,
// falling back to DefaultStatusCode when the endpoint has none.
func (e *Endpoint) ExpectedStatus() int {
	if len(e.ExampleResponses) > 0 {
		return e.ExampleResponses[0].Code
	}
	return DefaultStatusCode
}

// Summary returns a one-line "METHOD url (folder)" form for listings and logs.
func (e *Endpoint) Summary() string {
	if e.FolderPath == "" {
		return fmt.Sprintf("%s %s", e.Method, e.URL)
	}
	return fmt.Sprintf("%s %s (%s)", e.Method, e.URL, e.FolderPath)
}
