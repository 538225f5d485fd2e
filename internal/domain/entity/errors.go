package entity

import "errors"

// ErrInvalidConfigID is returned by ParseConfigID when the string form of a
// config identifier does not parse.
var ErrInvalidConfigID = errors.New("invalid config id")
