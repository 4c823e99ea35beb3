package model

import "encoding/json"

// Item is one node in the collection tree. A node carrying a nested Items
// collection is a folder; any other node is treated as a leaf request.
type Item struct {
	// Name of the folder or request.
	Name string `json:"name,omitempty"`

	// Items holds the children of a folder node. Kept raw so the walker can
	// decode each child independently and skip malformed siblings.
	Items json.RawMessage `json:"item,omitempty"`

	// Request holds the request sub-structure of a leaf node. Kept raw so a
	// malformed request fails only its own node.
	Request json.RawMessage `json:"request,omitempty"`

	// Responses are the recorded example responses attached to a request.
	Responses []Response `json:"response,omitempty"`

	// Events are script hooks (prerequest, test) attached to the item.
	Events []Event `json:"event,omitempty"`

	// Variables declared on a folder, shadowing inherited folder variables.
	Variables []Variable `json:"variable,omitempty"`
}

// IsFolder reports whether the node declares a nested items collection.
// A present-but-empty array still marks a folder.
func (it *Item) IsFolder() bool {
	return len(it.Items) > 0 && string(it.Items) != "null"
}
