// Package filesystem provides the filesystem seam used by the installer and
// the status command.
//
// FS is implemented on top of the OS filesystem for real runs and on top of
// afero for tests, where MemMapFs and ReadOnlyFs stand in for a project
// directory and for I/O failures respectively.
package filesystem
