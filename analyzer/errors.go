package analyzer

// CollectionFormatError indicates the input document is not a usable
// Postman collection: blank input, unreadable file, malformed JSON or an
// unsupported schema version. Node-level problems inside an otherwise valid
// collection never surface as this error; they are logged and skipped.
type CollectionFormatError struct {
	// Message describes what made the document unusable.
	Message string

	// Cause is the underlying I/O or parse error, when there is one.
	Cause error
}

func (e *CollectionFormatError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *CollectionFormatError) Unwrap() error {
	return e.Cause
}
