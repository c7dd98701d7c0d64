package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// curlLexer splits input into whitespace, quoted strings and bare words.
// Rules are tried in order, so quoted forms win over bare words. A
// backslash that starts a token and is directly followed by a newline is
// a line continuation and counts as whitespace. Backslashes at the end of
// a word belong to the word.
var curlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `(?:\s|\\\r?\n)+`},
	{Name: "DoubleQuoted", Pattern: `"(?:\\[\s\S]|[^"\\])*"`},
	{Name: "SingleQuoted", Pattern: `'(?:\\[\s\S]|[^'\\])*'`},
	{Name: "Bare", Pattern: `(?:[^\s\\]|\\\S)+\\*|\\+`},
})

type commandAST struct {
	Curl  bool       `@"curl"?`
	Items []*itemAST `@@*`
}

type itemAST struct {
	Option *optionAST `  @@`
	URL    *urlAST    `| @@`
}

type optionAST struct {
	Method *methodFlagAST `  @@`
	Header *headerFlagAST `| @@`
	Data   *dataFlagAST   `| @@`
}

type methodFlagAST struct {
	Pos   lexer.Position
	Flag  string    `@( "-X" | "--request" )`
	Value *valueAST `@@?`
}

type headerFlagAST struct {
	Pos   lexer.Position
	Flag  string    `@( "-H" | "--header" )`
	Value *valueAST `@@?`
}

type dataFlagAST struct {
	Pos   lexer.Position
	Flag  string    `@( "-d" | "--data" )`
	Value *valueAST `@@?`
}

type urlAST struct {
	Value *valueAST `@@`
}

type valueAST struct {
	Pos    lexer.Position
	Quoted *string `  @( DoubleQuoted | SingleQuoted )`
	Bare   *string `| @Bare`
}

var parseOptions = []participle.Option{
	participle.Lexer(curlLexer),
	participle.Elide("Whitespace"),
}

var (
	commandParser    = participle.MustBuild[commandAST](parseOptions...)
	optionParser     = participle.MustBuild[optionAST](parseOptions...)
	urlParser        = participle.MustBuild[urlAST](parseOptions...)
	methodFlagParser = participle.MustBuild[methodFlagAST](parseOptions...)
	headerFlagParser = participle.MustBuild[headerFlagAST](parseOptions...)
	dataFlagParser   = participle.MustBuild[dataFlagAST](parseOptions...)
	valueParser      = participle.MustBuild[valueAST](parseOptions...)
)

func (c *commandAST) tree(src string) *Node {
	n := &Node{Rule: RuleCommand, Text: src, Pos: Position{Line: 1, Column: 1}}
	for _, item := range c.Items {
		if child := item.tree(src); child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Items are flattened so that a command's children are the flag and url
// nodes themselves.
func (i *itemAST) tree(src string) *Node {
	switch {
	case i.Option != nil:
		return i.Option.flag(src)
	case i.URL != nil:
		return i.URL.tree(src)
	}
	return nil
}

func (o *optionAST) tree(src string) *Node {
	flag := o.flag(src)
	if flag == nil {
		return nil
	}
	return &Node{Rule: RuleOption, Text: flag.Text, Pos: flag.Pos, Children: []*Node{flag}}
}

func (o *optionAST) flag(src string) *Node {
	switch {
	case o.Method != nil:
		return o.Method.tree(src)
	case o.Header != nil:
		return o.Header.tree(src)
	case o.Data != nil:
		return o.Data.tree(src)
	}
	return nil
}

func (m *methodFlagAST) tree(src string) *Node {
	return flagNode(RuleMethodFlag, src, m.Pos, m.Flag, m.Value)
}

func (h *headerFlagAST) tree(src string) *Node {
	return flagNode(RuleHeaderFlag, src, h.Pos, h.Flag, h.Value)
}

func (d *dataFlagAST) tree(src string) *Node {
	return flagNode(RuleDataFlag, src, d.Pos, d.Flag, d.Value)
}

func (u *urlAST) tree(src string) *Node {
	if u.Value == nil {
		return nil
	}
	value := u.Value.tree(src)
	if value == nil {
		return nil
	}
	return &Node{Rule: RuleURL, Text: value.Text, Pos: value.Pos, Children: []*Node{value}}
}

func (v *valueAST) tree(string) *Node {
	var leaf *Node
	switch {
	case v.Quoted != nil:
		leaf = &Node{Rule: RuleQuoted, Text: *v.Quoted, Pos: position(v.Pos)}
	case v.Bare != nil:
		leaf = &Node{Rule: RuleBare, Text: *v.Bare, Pos: position(v.Pos)}
	default:
		return nil
	}
	return &Node{Rule: RuleValue, Text: leaf.Text, Pos: leaf.Pos, Children: []*Node{leaf}}
}

// flagNode spans from the flag token to the end of its value, if any.
func flagNode(rule Rule, src string, pos lexer.Position, flag string, value *valueAST) *Node {
	if flag == "" {
		return nil
	}
	n := &Node{Rule: rule, Pos: position(pos)}
	end := pos.Offset + len(flag)
	if value != nil {
		if v := value.tree(src); v != nil {
			n.Children = append(n.Children, v)
			end = v.End()
		}
	}
	if end > len(src) {
		end = len(src)
	}
	n.Text = src[pos.Offset:end]
	return n
}

func position(p lexer.Position) Position {
	return Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
