package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Shift  func(ShiftArgs) (Result, error)
	Goto   func(GotoArgs) (Result, error)
	Select func(SelectArgs) (Result, error)
	Today  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeNext, TypePrev:
		if handlers.Shift == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "shift handler not configured"}
		}
		return handlers.Shift(*cmd.Shift)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeSelect:
		if handlers.Select == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "select handler not configured"}
		}
		return handlers.Select(*cmd.Select)
	case TypeToday:
		if handlers.Today == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "today handler not configured"}
		}
		return handlers.Today()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
