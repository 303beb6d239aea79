package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markup renders a message containing simple HTML-like markup for the terminal.
// <b>, <strong>, <em> and <i> render with the emphasis style, <br> and </p>
// break the line, entities are decoded and every other tag is dropped.
func Markup(s string, emphasis lipgloss.Style) string {
	return markup(s, func(text string) string { return emphasis.Render(text) })
}

// Plain strips markup from s, keeping only its text and line breaks.
func Plain(s string) string {
	return markup(s, func(text string) string { return text })
}

func markup(s string, emphasize func(string) string) string {
	if !strings.ContainsAny(s, "<&") {
		return SanitizeLines(s)
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	depth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; keep what was rendered so far
			return strings.TrimRight(b.String(), "\n")
		case html.TextToken:
			text := SanitizeLines(string(z.Text()))
			if depth > 0 && text != "" {
				text = emphasize(text)
			}
			b.WriteString(text)
		case html.StartTagToken:
			switch tagAtom(z) {
			case atom.B, atom.Strong, atom.Em, atom.I:
				depth++
			case atom.Br:
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			switch tagAtom(z) {
			case atom.B, atom.Strong, atom.Em, atom.I:
				if depth > 0 {
					depth--
				}
			case atom.P:
				b.WriteByte('\n')
			}
		case html.SelfClosingTagToken:
			if tagAtom(z) == atom.Br {
				b.WriteByte('\n')
			}
		case html.CommentToken, html.DoctypeToken:
		}
	}
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}
