package odds

import (
	"errors"

	"pokerodds/pkg/equity"
)

// ErrInvalidAmount is returned when a buy-in or cash-out is not a finite number
var ErrInvalidAmount = errors.New("invalid amount")

// UserError is an error that is safe to show to a user
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// messages shown for each class of failure
const (
	ErrMessageInvalidInput UserError = "Invalid card data or calculation error. Please check your inputs."
	ErrMessageTooManyCards UserError = "There are not enough cards left in the deck for that many opponents."
	ErrMessageInvalidMoney UserError = "Every buy-in and cash-out must be a number."
	ErrMessageUnknown      UserError = "Something went wrong. Please try again."
)

// RequestError is returned when a request cannot be served
// The wrapped error keeps the details, User is what to tell the caller
type RequestError struct {
	User UserError
	err  error
}

func newRequestError(err error) *RequestError {
	return &RequestError{User: userErrorFor(err), err: err}
}

func (r *RequestError) Error() string {
	return r.err.Error()
}

// Unwrap returns the underlying error
func (r *RequestError) Unwrap() error {
	return r.err
}

// UserMessage returns a message about the error that is safe to show to a user
func UserMessage(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return string(re.User)
	}

	var ue UserError
	if errors.As(err, &ue) {
		return string(ue)
	}

	return string(ErrMessageUnknown)
}

func userErrorFor(err error) UserError {
	switch {
	case errors.Is(err, equity.ErrInsufficientCards):
		return ErrMessageTooManyCards
	case errors.Is(err, equity.ErrInvalidInput):
		return ErrMessageInvalidInput
	case errors.Is(err, ErrInvalidAmount):
		return ErrMessageInvalidMoney
	default:
		return ErrMessageUnknown
	}
}
