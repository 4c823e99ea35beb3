package model

// Response is one recorded example response attached to a request item.
type Response struct {
	// Name of the example, optional.
	Name string `json:"name,omitempty"`

	// Code is the HTTP status code of the example, optional.
	Code int `json:"code,omitempty"`

	// Body is the raw response body text.
	Body string `json:"body,omitempty"`

	// Headers recorded with the example response.
	Headers []Header `json:"header,omitempty"`
}
