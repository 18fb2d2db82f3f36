// Package authz provides the single ownership predicate used by every
// handler-facing service. Resources opt in by exposing their owning
// user ID.
package authz

import "errors"

var ErrForbidden = errors.New("forbidden")

// Owned is a resource with exactly one owning user.
type Owned interface {
	OwnedBy() int64
}

// IsOwner reports whether actorID owns res.
func IsOwner(actorID int64, res Owned) bool {
	if actorID == 0 || res == nil {
		return false
	}
	return res.OwnedBy() == actorID
}

// RequireOwner returns ErrForbidden unless actorID owns res.
func RequireOwner(actorID int64, res Owned) error {
	if !IsOwner(actorID, res) {
		return ErrForbidden
	}
	return nil
}
