// Package commands implements the operations behind each CLI command.
//
// Commands take plain option structs and return result values; they never
// print. The cmd/cursorrules package turns results into terminal output.
//
//   - Init:   select a bundle and install its rules
//   - Status: report which rules of the status bundle are installed
//   - List:   describe every rule and bundle
//   - Config: expose the effective configuration
//
// Dispatch routes a CommandType to its implementation.
package commands
