package grammar

// Rule names a syntax category of the curl grammar.
type Rule int

const (
	RuleCommand Rule = iota
	RuleOption
	RuleURL
	RuleMethodFlag
	RuleHeaderFlag
	RuleDataFlag
	RuleValue
	RuleQuoted
	RuleBare
)

var ruleNames = map[Rule]string{
	RuleCommand:    "command",
	RuleOption:     "option",
	RuleURL:        "url",
	RuleMethodFlag: "method-flag",
	RuleHeaderFlag: "header-flag",
	RuleDataFlag:   "data-flag",
	RuleValue:      "value",
	RuleQuoted:     "quoted",
	RuleBare:       "bare",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRule looks up a rule by its name, e.g. "header-flag".
func ParseRule(name string) (Rule, bool) {
	for r, n := range ruleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// RuleNames returns the names of all rules in declaration order.
func RuleNames() []string {
	names := make([]string, 0, len(ruleNames))
	for r := RuleCommand; r <= RuleBare; r++ {
		names = append(names, r.String())
	}
	return names
}
