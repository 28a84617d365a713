// Package installer copies rule files from a source catalog into a project's
// rules directory.
//
// Installs never overwrite: a file already present in the target is counted
// as skipped and left untouched, so running an install twice is a no-op the
// second time. Files are processed one at a time in bundle order and there
// is no rollback; when a copy fails, the files copied before it stay in
// place and the error is returned together with the partial Result.
//
// A bundle entry whose source file is missing is not an error. It is left
// out of both counts, listed in Result.Missing and logged at warn level.
package installer
