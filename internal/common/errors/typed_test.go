package errors

import (
	"errors"
	"testing"
)

func TestTypedErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&ParseError{Detail: "test error"}, "Failed to parse YAML: test error"},
		{&ItemNotFoundError{ID: "item-123"}, "Item not found: item-123"},
		{&StoryNotFoundError{ID: "1-story-1"}, "Story not found: 1-story-1"},
		{&UpdateError{Detail: "update failed"}, "Update failed: update failed"},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}

func TestTypedErrorUnwrapTargets(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&ParseError{Detail: "x"}, ErrDocumentParseError},
		{&ItemNotFoundError{ID: "x"}, ErrItemNotFound},
		{&StoryNotFoundError{ID: "x"}, ErrStoryNotFound},
		{&UpdateError{Detail: "x"}, ErrUpdateFailed},
	}

	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Errorf("Expected %v to unwrap to %v", tc.err, tc.sentinel)
		}
	}
}
