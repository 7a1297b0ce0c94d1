// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type job struct {
	folder string
	src    string
	dst    string
}

// discover lists the project files in the immediate subdirectories of root,
// folder by folder in name order.
func discover(root, sourceExt, outputExt string) ([]job, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root: %w", err)
	}

	var jobs []job
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}

		folder := filepath.Join(root, d.Name())
		files, err := os.ReadDir(folder)
		if err != nil {
			return nil, fmt.Errorf("read folder %s: %w", d.Name(), err)
		}

		for _, f := range files {
			if f.IsDir() || !hasExt(f.Name(), sourceExt) {
				continue
			}
			src := filepath.Join(folder, f.Name())
			jobs = append(jobs, job{
				folder: d.Name(),
				src:    src,
				dst:    outputPath(src, outputExt),
			})
		}
	}

	return jobs, nil
}

func hasExt(name, ext string) bool {
	e := filepath.Ext(name)
	return e != "" && len(name) > len(e) && strings.EqualFold(e, ext)
}

// outputPath replaces the trailing extension of src with ext.
func outputPath(src, ext string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}
