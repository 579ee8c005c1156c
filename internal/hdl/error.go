package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

// Error is the structured HTTP-level error every failure funnels into.
// Message, Field and Code are all optional; the boundary formatter
// derives fallbacks from Status.
type Error struct {
	Status  int
	Message string
	Field   string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}
