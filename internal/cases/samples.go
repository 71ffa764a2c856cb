// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cases

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed samples/*.yaml
var samplesFS embed.FS

// Samples returns the built-in case files, one per catalog problem, sorted
// by problem ID.
func Samples() ([]*CaseFile, error) {
	entries, err := fs.ReadDir(samplesFS, "samples")
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	var out []*CaseFile
	for _, entry := range entries {
		name := path.Join("samples", entry.Name())
		data, err := samplesFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		cf, err := ParseCaseFile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		cf.path = "builtin:" + name
		out = append(out, cf)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Problem < out[j].Problem })
	return out, nil
}
