package errors

import (
	stderr "errors"
	"fmt"
)

// KeyNotFoundError is a storage domain error for an absent key.
type KeyNotFoundError struct {
	Key string
}

// Error is an implementation of the error interface.
func (n *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found", n.Key)
}

// NotFoundKey returns a key and true if KeyNotFoundError is part of the
// error chain.
func NotFoundKey(e error) (_ string, ok bool) {
	var nf *KeyNotFoundError
	if !stderr.As(e, &nf) {
		return "", false
	}
	return nf.Key, true
}

// ProjectNotFoundError is a repository domain error for an unknown project id.
type ProjectNotFoundError struct {
	ID string
}

// Error is an implementation of the error interface.
func (n *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", n.ID)
}

// NotFoundProject returns a project id and true if ProjectNotFoundError is part of the
// error chain.
func NotFoundProject(e error) (_ string, ok bool) {
	var nf *ProjectNotFoundError
	if !stderr.As(e, &nf) {
		return "", false
	}
	return nf.ID, true
}

// HistoryItemNotFoundError reports an unknown history item id within the active project.
type HistoryItemNotFoundError struct {
	ID string
}

// Error is an implementation of the error interface.
func (n *HistoryItemNotFoundError) Error() string {
	return fmt.Sprintf("history item %q not found", n.ID)
}
