// Package status exports errors produced by the compare package.
package status

import (
	"github.com/anishTP/echo-portal-sub004/pkg/errors"
)

var (
	// ErrNotFound indicates the branch to compare does not exist
	ErrNotFound = errors.New("branch not found")
)
