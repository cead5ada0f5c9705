package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/calview/internal/model"
	"github.com/sandeepkv93/calview/internal/navigation"
)

type Type string

const (
	TypeNext   Type = "next"
	TypePrev   Type = "prev"
	TypeGoto   Type = "goto"
	TypeSelect Type = "select"
	TypeToday  Type = "today"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ShiftArgs struct {
	Months int
}

type GotoArgs struct {
	Jump navigation.PendingJump
}

type SelectArgs struct {
	Day int
}

type Command struct {
	Type   Type
	Raw    string
	Shift  *ShiftArgs
	Goto   *GotoArgs
	Select *SelectArgs
}

var aliases = map[string]Type{
	"n":        TypeNext,
	"p":        TypePrev,
	"previous": TypePrev,
	"g":        TypeGoto,
	"jump":     TypeGoto,
	"s":        TypeSelect,
	"t":        TypeToday,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	if alias, ok := aliases[head]; ok {
		head = string(alias)
	}

	switch Type(head) {
	case TypeNext:
		return parseShift(input, TypeNext, args, 1)
	case TypePrev:
		return parseShift(input, TypePrev, args, -1)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeSelect:
		return parseSelect(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseShift(raw string, typ Type, args []string, sign int) (Command, error) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s expects a positive month count, got %q", typ, args[0])}
		}
		n = v
	}
	return Command{Type: typ, Raw: raw, Shift: &ShiftArgs{Months: sign * n}}, nil
}

// parseGoto accepts "DD MM YYYY", "DD/MM/YYYY" or "YYYY-MM-DD". Component
// ranges are left to navigation.JumpTo.
func parseGoto(raw string, args []string) (Command, error) {
	switch len(args) {
	case 1:
		if strings.Contains(args[0], "/") {
			fields := strings.Split(args[0], "/")
			if len(fields) == 3 {
				return gotoFromFields(raw, fields[0], fields[1], fields[2])
			}
			break
		}
		d, err := model.ParseDate(args[0])
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
		}
		jump := navigation.NewPendingJump(d.Day(), int(d.Month()), d.Year())
		return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Jump: jump}}, nil
	case 3:
		return gotoFromFields(raw, args[0], args[1], args[2])
	}
	return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires DD MM YYYY or YYYY-MM-DD"}
}

func gotoFromFields(raw, day, month, year string) (Command, error) {
	jump := navigation.ParsePendingJump(day, month, year)
	if !jump.Complete() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goto missing %s", strings.Join(jump.Missing(), ", "))}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Jump: jump}}, nil
}

func parseSelect(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "select requires a day number"}
	}
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("select expects a day number, got %q", args[0])}
	}
	return Command{Type: TypeSelect, Raw: raw, Select: &SelectArgs{Day: day}}, nil
}
