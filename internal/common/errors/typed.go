package errors

// Typed errors carry the identifier or detail that triggered them. Display
// strings are stable: downstream tooling matches on them.

// ParseError reports unparseable YAML in a status document.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return "Failed to parse YAML: " + e.Detail
}

func (e *ParseError) Unwrap() error {
	return ErrDocumentParseError
}

// ItemNotFoundError reports a workflow item id missing from a document.
type ItemNotFoundError struct {
	ID string
}

func (e *ItemNotFoundError) Error() string {
	return "Item not found: " + e.ID
}

func (e *ItemNotFoundError) Unwrap() error {
	return ErrItemNotFound
}

// StoryNotFoundError reports a story id missing from a sprint document.
type StoryNotFoundError struct {
	ID string
}

func (e *StoryNotFoundError) Error() string {
	return "Story not found: " + e.ID
}

func (e *StoryNotFoundError) Unwrap() error {
	return ErrStoryNotFound
}

// UpdateError reports a status rewrite that could not be applied.
type UpdateError struct {
	Detail string
}

func (e *UpdateError) Error() string {
	return "Update failed: " + e.Detail
}

func (e *UpdateError) Unwrap() error {
	return ErrUpdateFailed
}
