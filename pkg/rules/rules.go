// Package rules embeds the canonical rule files shipped with cursorrules.
//
// The files under mdc/ are compiled into the binary and are the fallback
// source for installs when no rules directory sits next to the executable.
package rules

import (
	"embed"
	"io/fs"
)

// Dir is the directory inside FS holding the rule files.
const Dir = "mdc"

//go:embed mdc/*.mdc
var ruleFS embed.FS

// FS returns the embedded rule files. Paths are rooted at Dir.
func FS() fs.FS {
	return ruleFS
}

// Names returns the filenames of every embedded rule, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(ruleFS, Dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
