// Package wire implements the Referee/Administrator ↔ Player wire
// protocol: framed JSON request/response values and the error tokens a
// Player side may emit instead of a normal response.
package wire

import "errors"

// The three wire error tokens a Player side may send instead of a normal
// response, plus IllegalResponse: a purely local signal raised when a
// response fails shape validation (never sent over the wire itself).
var (
	ErrInvalidCommand    = errors.New("InvalidCommand")
	ErrIllegalPlay       = errors.New("IllegalPlay")
	ErrContractViolation = errors.New("ContractViolation")
	ErrIllegalResponse   = errors.New("IllegalResponse")
)

// ErrorToken returns the wire token for err, if err wraps one of the
// three sentinel errors that are ever sent as a response.
func ErrorToken(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidCommand):
		return "InvalidCommand", true
	case errors.Is(err, ErrIllegalPlay):
		return "IllegalPlay", true
	case errors.Is(err, ErrContractViolation):
		return "ContractViolation", true
	default:
		return "", false
	}
}

// ParseErrorToken reports whether raw is one of the three wire error
// tokens, and if so returns the corresponding sentinel error.
func ParseErrorToken(raw string) (error, bool) {
	switch raw {
	case "InvalidCommand":
		return ErrInvalidCommand, true
	case "IllegalPlay":
		return ErrIllegalPlay, true
	case "ContractViolation":
		return ErrContractViolation, true
	default:
		return nil, false
	}
}
