package expansion

import "strings"

// Assemble combines the original query text with expansion terms into one
// boolean expression. With no terms the text is returned unchanged.
func Assemble(text string, terms []string) string {
	if len(terms) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(text)
	b.WriteString(" ) OR ( ")
	b.WriteString(strings.Join(terms, " OR "))
	b.WriteString(" )")
	return b.String()
}
