package model

// Body contains the request payload in one of the Postman body modes.
type Body struct {
	// Mode selects the payload encoding: "raw", "urlencoded", "formdata"
	// or another mode this tool does not extract.
	Mode string `json:"mode,omitempty"`

	// Raw is the payload text for mode "raw".
	Raw string `json:"raw,omitempty"`

	// Options carries the editor hints for the raw payload, notably the language.
	Options *BodyOptions `json:"options,omitempty"`

	// URLEncoded holds the form fields for mode "urlencoded".
	URLEncoded []FormParam `json:"urlencoded,omitempty"`

	// FormData holds the form fields for mode "formdata".
	FormData []FormParam `json:"formdata,omitempty"`
}

// BodyOptions wraps the per-mode option blocks.
type BodyOptions struct {
	Raw *RawOptions `json:"raw,omitempty"`
}

// RawOptions carries the language hint for a raw body, e.g. "json" or "xml".
type RawOptions struct {
	Language string `json:"language,omitempty"`
}

// FormParam is one urlencoded or formdata field.
type FormParam struct {
	// Key of the field.
	Key string `json:"key"`

	// Value of the field, or the file reference for file-type formdata entries.
	Value string `json:"value,omitempty"`

	// Disabled fields are excluded from the endpoint record.
	Disabled bool `json:"disabled,omitempty"`
}
