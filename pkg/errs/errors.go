package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Something went wrong")
	ErrValidation     = errors.New("Invalid request payload")
	ErrNotFound       = errors.New("Resource not found")
	ErrDuplicate      = errors.New("Duplicate record found")
	ErrLimitExceeded  = errors.New("Limit reached")
	ErrInvalidFormat  = errors.New("Invalid image format")
	ErrUploadFailure  = errors.New("Image upload failed")
	ErrPersistFailure = errors.New("Failed to save record")
	ErrUnauthorized   = errors.New("Invalid email or password")
	ErrNoOp           = errors.New("No fields to update")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrValidation:     ErrStatusClient,
	ErrNotFound:       ErrStatusNotFound,
	ErrDuplicate:      ErrStatusClient,
	ErrLimitExceeded:  ErrStatusClient,
	ErrInvalidFormat:  ErrStatusClient,
	ErrUploadFailure:  ErrStatusInternalServer,
	ErrPersistFailure: ErrStatusInternalServer,
	ErrUnauthorized:   ErrStatusUnauthorized,
	ErrNoOp:           ErrStatusClient,
}

// Error attaches a user-facing message to one of the sentinel kinds above.
type Error struct {
	kind    error
	message string
}

func New(kind error, message string) error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the sentinel the error belongs to, or nil for unclassified errors.
func Kind(err error) error {
	for kind := range errorMap {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}

func GetErrorStatusCode(err error) int {
	kind := Kind(err)
	if kind == nil {
		return errorMap[ErrInternalServer]
	}

	return errorMap[kind]
}

// Message is the text safe to send to clients. Unclassified errors never leak.
func Message(err error) string {
	if Kind(err) == nil {
		return ErrInternalServer.Error()
	}

	return err.Error()
}
