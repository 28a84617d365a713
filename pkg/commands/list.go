package commands

import "github.com/arthur-debert/cursorrules/pkg/registry"

// ListOptions defines the options for the List command.
type ListOptions struct {
	Registry *registry.Registry
}

// ListResult describes the catalog.
type ListResult struct {
	Categories []registry.Category
	Bundles    []registry.Bundle
	TotalRules int
}

// List describes every known rule and bundle. It touches no filesystem.
func List(opts ListOptions) *ListResult {
	return &ListResult{
		Categories: opts.Registry.Categories(),
		Bundles:    opts.Registry.Bundles(),
		TotalRules: len(opts.Registry.Rules()),
	}
}
