// Package commands contains operations that change fleet state: registering
// vessels and moving cargo units on and off them.
// Every command is built through its constructor and checked again by the
// handler before the repository is touched.
package commands

import (
	"cargo/internal/pkg/errs"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)
