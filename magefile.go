//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "globalize"

// Default target to run when none is specified
var Default = Build

// Build compiles the globalize binary
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/globalize")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install installs globalize into $GOPATH/bin
func Install() error {
	mg.Deps(Vet)
	return sh.RunV("go", "install", "./cmd/globalize")
}

// Clean removes the binary
func Clean() error {
	return os.RemoveAll(binary)
}
