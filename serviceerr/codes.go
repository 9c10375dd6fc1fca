package serviceerr

import "errors"

// GetCode extracts the Code from err if err is, or wraps, a serviceerr.Error.
func GetCode(err error) (Code, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	c, ok := GetCode(err)
	return ok && c == code
}
