// Package registry holds the bundle and rule catalog.
//
// A Registry is built once from a YAML catalog and never mutated afterwards.
// Bundles keep the order in which the catalog declares them, which is what
// makes ResolveByOrdinal stable across runs.
package registry
