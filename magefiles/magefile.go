//go:build mage

// Package main provides build targets for notasd using Mage.
//
// Usage:
//
//	mage build            Compile notasd to bin/
//	mage test             Run unit tests
//	mage testIntegration  Run tests against PostgreSQL in testcontainers
//	mage lint             Run golangci-lint
//	mage run              Build and start the API on sqlite
//	mage clean            Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "notasd"
	binaryDir  = "bin"
	cmdDir     = "./cmd"
)

// Build compiles the notasd binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	return sh.RunV("go", "build", "-v",
		"-ldflags", "-X main.version="+version,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestIntegration runs the integration-tagged tests; requires Docker.
func TestIntegration() error {
	return sh.RunV("go", "test", "-tags", "integration", "-count=1", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run builds and starts the API with a local sqlite database.
func Run() error {
	mg.Deps(Build)
	env := map[string]string{
		"DB_DRIVER": "sqlite",
		"DB_DSN":    "notas.db?_foreign_keys=1",
	}
	return sh.RunWithV(env, filepath.Join(binaryDir, binaryName), "serve")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
