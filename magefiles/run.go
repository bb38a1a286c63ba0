//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Engine builds and launches the testbed application.
func (Run) Engine() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("./bin/kepler", withStream()); err != nil {
		return err
	}
	return nil
}
