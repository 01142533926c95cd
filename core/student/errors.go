package student

import (
	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound              = errors.New("student not found")
	ErrEmailExists           = errors.New("a student with this email already exists")
	ErrIncorrectPointsFormat = errors.New("incorrect points format")
	ErrUnknownCourse         = errors.New("unknown course")
)

// Reason tells which part of the credentials could not be matched.
type Reason int

const (
	ReasonFirstName Reason = iota + 1
	ReasonLastName
	ReasonEmail
	ReasonUnparseable
)

func (r Reason) String() string {
	switch r {
	case ReasonFirstName:
		return "first name"
	case ReasonLastName:
		return "last name"
	case ReasonEmail:
		return "email"
	default:
		return "credentials"
	}
}

// CredentialsError reports the first invalid part of a student's credentials.
type CredentialsError struct {
	Reason Reason
}

func (err *CredentialsError) Error() string {
	return "incorrect " + err.Reason.String()
}

func newCredentialsError(r Reason) error {
	return &CredentialsError{Reason: r}
}

// InvalidReason returns the Reason carried by `err`, if any.
func InvalidReason(err error) (Reason, bool) {
	var credErr *CredentialsError
	if errors.As(err, &credErr) {
		return credErr.Reason, true
	}
	return 0, false
}
