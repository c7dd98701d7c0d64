package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

type treeBuilder[T any] interface {
	*T
	tree(src string) *Node
}

// Match matches the whole input as a curl command.
func Match(input string) (*Node, error) {
	return run(commandParser, RuleCommand, input)
}

// MatchRule matches the whole input as a single rule, for example a lone
// header flag. Trailing input that the rule does not consume is an error.
func MatchRule(rule Rule, input string) (*Node, error) {
	switch rule {
	case RuleCommand:
		return run(commandParser, rule, input)
	case RuleOption:
		return run(optionParser, rule, input)
	case RuleURL:
		return run(urlParser, rule, input)
	case RuleMethodFlag:
		return run(methodFlagParser, rule, input)
	case RuleHeaderFlag:
		return run(headerFlagParser, rule, input)
	case RuleDataFlag:
		return run(dataFlagParser, rule, input)
	case RuleValue:
		return run(valueParser, rule, input)
	case RuleQuoted, RuleBare:
		n, err := run(valueParser, rule, input)
		if err != nil {
			return nil, err
		}
		leaf := n.Children[0]
		if leaf.Rule != rule {
			return nil, &SyntaxError{Rule: rule, Pos: leaf.Pos, Message: fmt.Sprintf("found %s value %q", leaf.Rule, leaf.Text)}
		}
		return leaf, nil
	}
	return nil, fmt.Errorf("grammar: unknown rule %d", int(rule))
}

func run[T any, PT treeBuilder[T]](p *participle.Parser[T], rule Rule, input string) (*Node, error) {
	ast, err := p.ParseString("", input)
	if err != nil {
		return nil, newSyntaxError(rule, err)
	}
	n := PT(ast).tree(input)
	if n == nil {
		return nil, endOfInput(rule, input)
	}
	if err := checkSeparated(rule, n, input); err != nil {
		return nil, err
	}
	return n, nil
}

// checkSeparated rejects a quoted value that is glued to the text after
// it, as in "https://x.com"/path. Whitespace is elided by the lexer, so
// the gap has to be checked against the source.
func checkSeparated(rule Rule, n *Node, input string) error {
	var err error
	n.Walk(func(node *Node) bool {
		if err != nil {
			return false
		}
		if node.Rule != RuleQuoted {
			return true
		}
		end := node.End()
		if end < len(input) && !separatorAt(input, end) {
			err = &SyntaxError{
				Rule:    rule,
				Pos:     positionAt(input, end),
				Message: "quoted value must be followed by whitespace",
			}
		}
		return false
	})
	return err
}

// separatorAt reports whether the lexer's Whitespace rule matches at
// offset. Like the lexer's \s, only ASCII whitespace counts.
func separatorAt(input string, offset int) bool {
	rest := input[offset:]
	return strings.IndexByte(" \t\n\f\r", rest[0]) >= 0 ||
		strings.HasPrefix(rest, "\\\n") ||
		strings.HasPrefix(rest, "\\\r\n")
}
