package model

import "encoding/json"

// URL represents a request URL. Postman writes it either as a plain string
// or as a structured object with protocol/host/path/query segments, so the
// type decodes both forms.
type URL struct {
	// Raw is the URL as authored. For the plain-string form this is the
	// whole value.
	Raw string `json:"raw,omitempty"`

	// Protocol of the URL, e.g. "https", without the "://" separator.
	Protocol string `json:"protocol,omitempty"`

	// Host segments, joined with "." to reconstruct the hostname.
	Host []string `json:"host,omitempty"`

	// Path segments, each joined with a leading "/".
	Path []string `json:"path,omitempty"`

	// Query parameters parsed out of the URL.
	Query []QueryParam `json:"query,omitempty"`
}

// QueryParam is one query-string entry.
type QueryParam struct {
	// Key of the parameter.
	Key string `json:"key"`

	// Value of the parameter.
	Value string `json:"value"`

	// Disabled parameters are excluded from the endpoint record.
	Disabled bool `json:"disabled,omitempty"`
}

// UnmarshalJSON accepts both the plain-string and the structured object form.
func (u *URL) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*u = URL{Raw: raw}
		return nil
	}

	type alias URL
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*u = URL(obj)
	return nil
}

// IsPlain reports whether the URL was authored as a plain string rather
// than a structured object.
func (u *URL) IsPlain() bool {
	return u.Protocol == "" && len(u.Host) == 0 && len(u.Path) == 0 && len(u.Query) == 0
}
