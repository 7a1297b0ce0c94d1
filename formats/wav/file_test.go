// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "take.wav")
	samples := []int16{0, 32767, -32767}

	if err := WriteFile(path, 44100, samples); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != int64(44+2*len(samples)) {
		t.Errorf("file size = %d, want %d", info.Size(), 44+2*len(samples))
	}
	if info.Mode().Perm()&0o044 == 0 {
		t.Errorf("file mode = %o, want group/other readable", info.Mode().Perm())
	}

	assertOnlyFiles(t, dir, "take.wav")
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "take.wav")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, 44100, []int16{1}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 46 {
		t.Errorf("file size = %d, want 46", info.Size())
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "take.wav")

	err := WriteFile(path, 44100, []int16{1})
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("WriteFile() error = %v, want ErrEncode", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output exists after failed write: %v", err)
	}
}

func TestWriteAtomic_FailureLeavesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "take.wav")

	err := writeAtomic(path, func(w io.Writer) error {
		if _, err := w.Write([]byte("RIFF")); err != nil {
			return err
		}
		return ErrShortWrite
	})
	if !errors.Is(err, ErrShortWrite) {
		t.Fatalf("writeAtomic() error = %v, want ErrShortWrite", err)
	}

	assertOnlyFiles(t, dir)
}

func assertOnlyFiles(t *testing.T, dir string, want ...string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if len(got) != len(want) {
		t.Fatalf("directory holds %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directory holds %v, want %v", got, want)
		}
	}
}
