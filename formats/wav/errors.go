// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrEncode is wrapped by every failure to produce a complete output file.
	ErrEncode       = errors.New("cannot encode WAV")
	ErrShortWrite   = fmt.Errorf("%w: short write", ErrEncode)
	ErrDataTooLarge = fmt.Errorf("%w: sample data exceeds the 4 GiB RIFF limit", ErrEncode)
	ErrVerify       = fmt.Errorf("%w: written file does not match", ErrEncode)
)
