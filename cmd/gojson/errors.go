package main

import "errors"

// ErrInvalidOption is returned when a flag value doesn't match one of its
// documented choices.
var ErrInvalidOption = errors.New("invalid option")

// ErrReadInput is returned when the target file cannot be read.
var ErrReadInput = errors.New("read input")
