package model

import "encoding/json"

// Collection represents the root of a Postman Collection v2.x document.
//
// Format reference: https://schema.getpostman.com/json/collection/v2.1.0/collection.json
type Collection struct {
	// Info holds the collection metadata, including the schema URL used to
	// gate supported format versions.
	Info Info `json:"info"`

	// Variables declared at the collection level, the outermost substitution scope.
	Variables []Variable `json:"variable,omitempty"`

	// Items is the raw tree of folders and requests. It is decoded lazily,
	// node by node, so one malformed entry cannot poison the whole document.
	Items json.RawMessage `json:"item,omitempty"`
}

// Info contains the collection-level metadata block.
type Info struct {
	// Name of the collection, optional in the wire format.
	Name string `json:"name,omitempty"`

	// Schema is the collection format schema URL. Only v2.x schemas are supported.
	Schema string `json:"schema,omitempty"`

	// Description of the collection, either a plain string or a {content} object.
	Description Description `json:"description,omitempty"`
}
