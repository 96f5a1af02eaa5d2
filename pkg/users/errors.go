package users

import "errors"

//go:generate go run github.com/dmarkham/enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind classifies a service failure so transports can map it to their own
// status codes without inspecting messages.
type Kind int

const (
	KindInvalidInput Kind = iota
	KindConflict
	KindNotFound
	KindUnauthorized
)

// Error is a service failure with a classification
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a classified service error
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the classification from err. The second return is false
// when err is not a service error.
func KindOf(err error) (Kind, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return 0, false
}
