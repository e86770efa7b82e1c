package equity

import "errors"

// ErrInvalidInput is returned when the hole cards, board, opponent count or iteration
// count are malformed. It is never retried or coerced.
var ErrInvalidInput = errors.New("invalid input")

// ErrInsufficientCards is returned when the deck cannot complete the board and deal
// every opponent. Reducing the number of opponents fixes it.
var ErrInsufficientCards = errors.New("not enough cards left in the deck")
