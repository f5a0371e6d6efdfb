package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a unique constraint
// rejects a write (for example a second order for the same quote).
var ErrAlreadyExists = errors.New("already exists")
