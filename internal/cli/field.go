package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onestop/osic/internal/common"
)

// fieldStatus is the state of a single prompted field.
type fieldStatus int

const (
	fieldPrompting fieldStatus = iota
	fieldValid
	fieldInvalid
)

// fieldState tracks one field through Prompting -> Valid, looping through
// Invalid back to Prompting for every rejected answer.
type fieldState[T any] struct {
	value  T
	reason string
	status fieldStatus
}

// parseFunc converts a raw answer into a field value. Errors carrying a
// common.UserError message are shown to the operator as the retry reason.
type parseFunc[T any] func(input string) (T, error)

// invalid builds the error a parseFunc returns for a rejected answer.
func invalid(message string, err error) error {
	return common.NewUserError(message, err)
}

// promptField asks for label until parse accepts the answer.
func promptField[T any](ctx context.Context, p *Prompter, label string, parse func(string) (T, error)) (T, error) {
	state := fieldState[T]{status: fieldPrompting}

	for {
		switch state.status {
		case fieldPrompting:
			input, err := p.readLine(ctx, label)
			if err != nil {
				var zero T
				return zero, err
			}

			value, err := parse(input)
			if err != nil {
				state = fieldState[T]{status: fieldInvalid, reason: common.UserMessage(err)}
				continue
			}
			state = fieldState[T]{status: fieldValid, value: value}

		case fieldInvalid:
			if _, err := fmt.Fprintln(p.writer, FormatError(state.reason)); err != nil {
				slog.Warn("Failed to write validation message", "error", err)
			}
			state.status = fieldPrompting

		case fieldValid:
			return state.value, nil
		}
	}
}
