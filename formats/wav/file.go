// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes samples as a mono 16-bit WAV at path.
//
// The file is written under a temporary name in the same directory and renamed
// into place once complete, so path either holds the whole file or is left
// untouched. Failures wrap ErrEncode.
func WriteFile(path string, sampleRate int, samples []int16) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteWAV16(w, sampleRate, samples)
	})
}

func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriterSize(tmp, 64<<10)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrEncode, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrEncode, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: chmod: %w", ErrEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrEncode, err)
	}

	return nil
}
