// Package status exports errors produced by the review package.
package status

import (
	"github.com/anishTP/echo-portal-sub004/pkg/errors"
)

var (
	// ErrNotFound indicates a branch or review was not found
	ErrNotFound = errors.New("review target not found")

	// ErrValidation indicates the operation is not valid in the current state
	ErrValidation = errors.New("invalid review operation")

	// ErrForbidden indicates the actor lacks the required relationship
	ErrForbidden = errors.New("actor not allowed")

	// ErrConflict indicates a duplicate active review for the reviewer
	ErrConflict = errors.New("active review already exists")

	// ErrTransitionFailed indicates the decision was recorded but the
	// branch transition could not be applied downstream
	ErrTransitionFailed = errors.New("review decision recorded but branch transition failed")
)
