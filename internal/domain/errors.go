package domain

import "errors"

// Storage-level sentinels. Repositories translate driver errors into these;
// handlers map them onto 404 and 409.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// ErrInvalidCredentials covers both a missing account and a wrong password;
// login responses never distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError rejects a malformed payload before it reaches storage.
// Msg identifies the field or sub-object that failed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
