// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	// ErrLocked indicates another run holds the lock on the root directory.
	ErrLocked = errors.New("root directory is locked by another run")

	ErrNoRoot = errors.New("root directory is not set")
)
