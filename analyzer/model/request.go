package model

// Request contains the request description of a leaf item.
type Request struct {
	// Method of the HTTP request, e.g. GET/POST. May be absent or lowercase
	// in the wire format; normalization happens in the parser.
	Method string `json:"method,omitempty"`

	// URL of the request, either a plain string or a structured object.
	URL URL `json:"url,omitempty"`

	// Headers sent with the request.
	Headers []Header `json:"header,omitempty"`

	// Body of the request (e.g. for a POST).
	Body *Body `json:"body,omitempty"`

	// Description of the request, string or {content} object.
	Description Description `json:"description,omitempty"`
}

// Header is one request or response header entry.
type Header struct {
	// Key of the header.
	Key string `json:"key"`

	// Value of the header.
	Value string `json:"value"`

	// Disabled headers are present in the document but excluded from the request.
	Disabled bool `json:"disabled,omitempty"`
}
