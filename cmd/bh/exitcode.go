package main

import (
	"errors"

	"github.com/phil-mansfield/barnes-hut/config"
	"github.com/phil-mansfield/barnes-hut/octree"
	"github.com/phil-mansfield/barnes-hut/particleio"
)

// exitCodeFor maps an error surfaced from the pipeline to the driver's
// exit codes: 1 usage, 2 config read failure, 3 particle data read
// failure, 4 arena exhaustion.
func exitCodeFor(err error) int {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 1
	}

	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return 2
	}

	var pioErr *particleio.Error
	if errors.As(err, &pioErr) {
		if pioErr.Kind == particleio.InvalidConfig {
			return 2
		}
		return 3
	}

	var octErr *octree.Error
	if errors.As(err, &octErr) && octErr.Kind == octree.ArenaExhausted {
		return 4
	}

	return 1
}

// usageError marks a command-line argument that failed to parse
// (e.g. theta or particles-per-leaf not a number), or a scenario file
// named on the command line that could not be loaded.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
