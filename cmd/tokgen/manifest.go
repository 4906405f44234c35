package main

import (
	"tokgen/internal/project"
)

// loadManifest finds tokgen.toml from the optional directory argument upward.
func loadManifest(args []string) (*project.Config, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	return project.Discover(dir)
}
