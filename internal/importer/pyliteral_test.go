package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListLiteral(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"single quotes", `['flour', 'sugar', 'eggs']`, []string{"flour", "sugar", "eggs"}},
		{"double quotes", `["flour", "sugar"]`, []string{"flour", "sugar"}},
		{"mixed quotes", `['flour', "2 cups sugar"]`, []string{"flour", "2 cups sugar"}},
		{"escaped quote", `['it\'s ready', "say \"done\""]`, []string{"it's ready", `say "done"`}},
		{"escape sequences", `['line one\nline two', 'tab\there']`, []string{"line one\nline two", "tab\there"}},
		{"empty list", `[]`, []string{}},
		{"surrounding whitespace", `  [ 'a' , 'b' ]  `, []string{"a", "b"}},
		{"quote of other kind inside", `["it's fine"]`, []string{"it's fine"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseListLiteral(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseListLiteralRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"not a list", "just some text"},
		{"empty string", ""},
		{"bare number list", "[1, 2, 3]"},
		{"nested list", "[['a'], ['b']]"},
		{"unterminated string", `['open`},
		{"missing comma", `['a' 'b']`},
		{"leading comma", `[, 'a']`},
		{"trailing comma only", `[,]`},
		{"dict literal", `{'a': 1}`},
		{"dangling escape", `['oops\`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseListLiteral(tc.input)
			assert.Error(t, err)
		})
	}
}
