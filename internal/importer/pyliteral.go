package importer

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseListLiteral parses a Python-style list literal of strings, e.g.
// ['flour', "2 eggs", 'it\'s done']. The Food.com dataset encodes its
// ingredient, step and tag columns this way. Anything that is not a flat
// list of quoted strings is rejected with an error; this replaces the
// upstream dataset's eval()-based parsing.
func ParseListLiteral(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("not a list literal: %.40q", s)
	}

	body := s[1 : len(s)-1]
	items := []string{}
	i := 0
	expectItem := true

	for i < len(body) {
		r := rune(body[i])
		switch {
		case unicode.IsSpace(r):
			i++
		case r == ',':
			if expectItem {
				return nil, fmt.Errorf("unexpected comma at offset %d", i+1)
			}
			expectItem = true
			i++
		case r == '\'' || r == '"':
			if !expectItem {
				return nil, fmt.Errorf("unexpected string at offset %d", i+1)
			}
			item, next, err := parseQuoted(body, i)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			expectItem = false
			i = next
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", r, i+1)
		}
	}

	if expectItem && len(items) > 0 {
		return nil, fmt.Errorf("trailing comma without item")
	}

	return items, nil
}

// parseQuoted consumes a quoted string starting at s[start] and returns
// the unescaped value and the index just past the closing quote.
func parseQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	i := start + 1

	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("dangling escape at offset %d", i+1)
			}
			switch esc := s[i+1]; esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				// \' \" \\ and anything else pass through literally
				b.WriteByte(esc)
			}
			i += 2
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
			i++
		}
	}

	return "", 0, fmt.Errorf("unterminated string starting at offset %d", start+1)
}
