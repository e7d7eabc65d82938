//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and prints the limitations and future work found in
// a full-text file, with per-match detail.
func Extract(file string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "extract", "--detail", file)
}
