package cond

import (
	"fmt"
	"strings"

	"github.com/nickyhof/CsvHandler/core"
)

type Operator int

const (
	GreaterThanOperator Operator = iota
	LessThanOperator
	EqualsOperator
)

func (operator Operator) String() string {
	switch operator {
	case GreaterThanOperator:
		return ">"
	case LessThanOperator:
		return "<"
	case EqualsOperator:
		return "="
	default:
		return "?"
	}
}

// Condition is a parsed column<operator>value triple.
type Condition struct {
	Column   string
	Operator Operator
	Value    Value
}

func (condition Condition) String() string {
	return condition.Column + condition.Operator.String() + condition.Value.Text
}

type Parser struct {
	lexer *Lexer
	input string
	token Token
}

func NewParser(input string) *Parser {
	parser := &Parser{lexer: NewLexer(strings.ToLower(input)), input: input}
	parser.next()
	return parser
}

func (parser *Parser) next() {
	parser.token = parser.lexer.NextToken()
}

// Parse parses a condition string. Any deviation from the grammar yields an
// error wrapping core.ErrConditionParse.
func Parse(input string) (Condition, error) {
	return NewParser(input).Parse()
}

func (parser *Parser) Parse() (Condition, error) {
	var condition Condition

	if parser.token.Type == Quote {
		parser.next()
	}

	if parser.token.Type != Word {
		return condition, parser.errorf("expected column name, got %s", parser.token)
	}
	condition.Column = parser.token.Value
	parser.next()

	switch parser.token.Type {
	case GreaterThan:
		condition.Operator = GreaterThanOperator
	case LessThan:
		condition.Operator = LessThanOperator
	case Equals:
		condition.Operator = EqualsOperator
	default:
		return condition, parser.errorf("expected one of '>', '<', '=' after %q, got %s", condition.Column, parser.token)
	}
	parser.next()

	var value strings.Builder
	for parser.token.Type == Word || parser.token.Type == Space || parser.token.Type == Dot {
		value.WriteString(parser.token.Value)
		parser.next()
	}
	if value.Len() == 0 {
		return condition, parser.errorf("expected value after %q, got %s", condition.Column+condition.Operator.String(), parser.token)
	}
	condition.Value = Coerce(value.String())

	if parser.token.Type == Quote {
		parser.next()
	}

	if parser.token.Type != EOF {
		return condition, parser.errorf("unexpected %s after value", parser.token)
	}

	return condition, nil
}

func (parser *Parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w \"%s\": %s", core.ErrConditionParse, parser.input, fmt.Sprintf(format, args...))
}
