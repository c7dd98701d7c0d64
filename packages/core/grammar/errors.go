package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// SyntaxError reports input that cannot be matched as Rule.
type SyntaxError struct {
	Rule    Rule
	Pos     Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s: %s", e.Pos, e.Rule, e.Message)
}

func newSyntaxError(rule Rule, err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &SyntaxError{
			Rule:    rule,
			Pos:     Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column},
			Message: perr.Message(),
		}
	}
	return &SyntaxError{
		Rule:    rule,
		Pos:     Position{Line: 1, Column: 1},
		Message: err.Error(),
	}
}

// endOfInput builds the error for input that ended before rule matched.
func endOfInput(rule Rule, input string) *SyntaxError {
	return &SyntaxError{
		Rule:    rule,
		Pos:     positionAt(input, len(input)),
		Message: "unexpected end of input",
	}
}

func positionAt(input string, offset int) Position {
	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return Position{Offset: offset, Line: line, Column: col}
}
