package view

import "errors"

// ErrAlreadyConstructed is returned by New when the shared View already exists.
var ErrAlreadyConstructed = errors.New("view: already constructed")
