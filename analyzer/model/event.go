package model

import "encoding/json"

// ListenTest marks an event as the test lifecycle hook.
const ListenTest = "test"

// Event is one script hook attached to an item.
type Event struct {
	// Listen names the lifecycle hook, e.g. "prerequest" or "test".
	Listen string `json:"listen,omitempty"`

	// Script holds the executable content of the hook.
	Script *Script `json:"script,omitempty"`
}

// Script is the executable content of an event.
type Script struct {
	// Exec holds the script lines. The wire format writes either an array
	// of lines or a single string.
	Exec ScriptLines `json:"exec,omitempty"`
}

// ScriptLines decodes the exec field from either a string or an array of strings.
type ScriptLines []string

func (s *ScriptLines) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = ScriptLines{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = ScriptLines(many)
	return nil
}
