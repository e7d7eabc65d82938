//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a CORE search, e.g. mage search healthcare.
// The API key comes from .secrets/core-api-key or RESEARCH_GAPS_CORE_API_KEY.
func Search(query string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "search", query)
}
