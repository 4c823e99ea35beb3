package model

import "encoding/json"

// Description decodes the description field, which the wire format writes
// either as a plain string or as an object carrying a content field.
type Description string

func (d *Description) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*d = Description(plain)
		return nil
	}

	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = Description(obj.Content)
	return nil
}

// String returns the description text.
func (d Description) String() string {
	return string(d)
}
