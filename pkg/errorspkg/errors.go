// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates an unexpected failure whose details are not exposed to clients.
var ErrInternal = errors.New("internal")
