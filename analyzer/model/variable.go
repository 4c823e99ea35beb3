package model

// Variable is one key/value substitution entry, declared at the collection
// or folder level.
type Variable struct {
	// Key of the variable. Entries with an empty key are skipped.
	Key string `json:"key"`

	// Value substituted for {{Key}} placeholders.
	Value string `json:"value"`
}
