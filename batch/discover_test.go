// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, ext, want string
	}{
		{"/r/s/take.aup3", ".wav", "/r/s/take.wav"},
		{"/r/s/take.AUP3", ".wav", "/r/s/take.wav"},
		{"/r/s/take.aup3.aup3", ".wav", "/r/s/take.aup3.wav"},
		{"/r/old.aup3 files/take.aup3", ".wav", "/r/old.aup3 files/take.wav"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.src, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.src, tt.ext, got, tt.want)
		}
	}
}

func TestHasExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"take.aup3", true},
		{"TAKE.AUP3", true},
		{"take.aup3-wal", false},
		{"take.aup3.bak", false},
		{".aup3", false},
		{"take", false},
	}

	for _, tt := range tests {
		if got := hasExt(tt.name, ".aup3"); got != tt.want {
			t.Errorf("hasExt(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch := func(rel string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Only files directly inside a folder of root qualify.
	touch("top.aup3")
	touch("a/deep/three.aup3")

	touch("b/two.aup3")
	touch("b/notes.txt")
	touch("a/one.AUP3")
	touch("a/zero.aup3-shm")
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	jobs, err := discover(root, ".aup3", ".wav")
	if err != nil {
		t.Fatalf("discover() error = %v", err)
	}

	want := []job{
		{folder: "a", src: filepath.Join(root, "a", "one.AUP3"), dst: filepath.Join(root, "a", "one.wav")},
		{folder: "b", src: filepath.Join(root, "b", "two.aup3"), dst: filepath.Join(root, "b", "two.wav")},
	}
	if len(jobs) != len(want) {
		t.Fatalf("discover() = %v, want %v", jobs, want)
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("jobs[%d] = %+v, want %+v", i, jobs[i], want[i])
		}
	}
}
