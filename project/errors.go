// SPDX-License-Identifier: EPL-2.0

package project

import "errors"

var (
	// ErrContainerOpen indicates the file could not be opened as a project container
	// (missing, unreadable, locked or not a SQLite database).
	ErrContainerOpen = errors.New("cannot open project container")

	// ErrNoAudioData indicates the container holds no audio: the block table is
	// missing or empty, or none of its blocks carry decodable samples.
	ErrNoAudioData = errors.New("no audio data")

	// ErrMalformedPayload indicates a block row whose payload could not be read
	// or whose length is not a whole number of samples.
	ErrMalformedPayload = errors.New("malformed sample payload")
)
