//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Binary compiles the host application.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/kepler", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Vet runs go vet over the whole module.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Test runs the full test suite.
func (Build) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
