package cond

import (
	"reflect"
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			"simple condition",
			"price<350",
			[]Token{{Word, "price"}, {LessThan, "<"}, {Word, "350"}, {EOF, ""}},
		},
		{
			"quoted value with spaces",
			`"name=iphone 15 pro"`,
			[]Token{
				{Quote, `"`}, {Word, "name"}, {Equals, "="},
				{Word, "iphone"}, {Space, " "}, {Word, "15"}, {Space, " "}, {Word, "pro"},
				{Quote, `"`}, {EOF, ""},
			},
		},
		{
			"decimal value",
			"rating>4.5",
			[]Token{{Word, "rating"}, {GreaterThan, ">"}, {Word, "4"}, {Dot, "."}, {Word, "5"}, {EOF, ""}},
		},
		{
			"unknown characters",
			"a+1",
			[]Token{{Word, "a"}, {Unknown, "+"}, {Word, "1"}, {EOF, ""}},
		},
		{
			"unicode word",
			"город=москва",
			[]Token{{Word, "город"}, {Equals, "="}, {Word, "москва"}, {EOF, ""}},
		},
		{
			"empty input",
			"",
			[]Token{{EOF, ""}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens := tokenize(test.input)
			if !reflect.DeepEqual(tokens, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, tokens)
			}
		})
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	lexer := NewLexer("a")
	lexer.NextToken()

	for i := 0; i < 3; i++ {
		if token := lexer.NextToken(); token.Type != EOF {
			t.Fatalf("Expected EOF, got %s", token)
		}
	}
}
