package filesystem

import "io/fs"

// FS is the filesystem interface required to install and inspect rules.
// Rule sources are read through fs.FS; FS only covers the project side.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
