package form

import "errors"

// ErrUnknownField indicates an identifier outside the nine form fields.
var ErrUnknownField = errors.New("form: unknown field")
