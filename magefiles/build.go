//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the display binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "garland", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet over the module.
func (Build) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
