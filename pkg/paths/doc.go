// Package paths resolves where rules are read from and where they go.
//
// The target is always derived from the project directory (the working
// directory unless --dir is given). The source is resolved relative to the
// running executable, never the working directory, so an installed binary
// finds the rules it was packaged with.
package paths
