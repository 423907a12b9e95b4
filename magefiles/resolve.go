//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	sampleText     = "testdata/sample.txt"
	sampleTreebank = "testdata/treebank.yaml"
)

// Resolve builds the CLI and resolves the bundled sample document against
// its treebank.
func Resolve() error {
	mg.Deps(Build, Init)
	fmt.Println("[resolve] Resolving", sampleText)
	return sh.RunV(binPath, "resolve", "--parser", "treebank", "--treebank", sampleTreebank, sampleText)
}

// Mentions builds the CLI and lists the sample document's mentions.
func Mentions() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "mentions", "--parser", "treebank", "--treebank", sampleTreebank, sampleText)
}

// Seed imports the built-in taxonomy into wordnet/wordnet.db and prints the
// paths of a person noun and an artifact noun.
func Seed() error {
	mg.Deps(Build, Init)
	for _, word := range []string{"woman", "car"} {
		if err := sh.RunV(binPath, "wordnet", "paths", word); err != nil {
			return err
		}
	}
	return nil
}
