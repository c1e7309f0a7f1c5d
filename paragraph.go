package htex

import (
	"regexp"
	"strings"
)

var (
	mathMarkers   = strings.NewReplacer("$$MATHSTART$$", "$", "$$MATHEND$$", "$")
	italicMarkers = regexp.MustCompile(`(?s)\$\$ITALICSTART\$\$(.*?)\$\$ITALICEND\$\$`)
	backslashed   = regexp.MustCompile(`\\([^\\\n]+)\\`)
	starred       = regexp.MustCompile(`\*([^*\n]+)\*`)
)

// paragraph renders prose: either a plain paragraph with explicit line breaks or an itemize list,
// when one of the lines starts with "-"
func paragraph(content string) string {
	text := mathMarkers.Replace(content)
	text = italics(text)
	text = italicMarkers.ReplaceAllString(text, "\\textit{${1}}")

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if isItem(line) {
			return list(lines)
		}
	}

	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, escapeBraces(textSymbols(line)))
	}

	return joinLines(out) + "\n"
}

// list renders lines as itemize environment, lines without "-" are kept as text between lists
func list(lines []string) string {
	var b strings.Builder
	var text []string

	open := false
	for _, line := range lines {
		line = strings.TrimSpace(line)

		switch {
		case isItem(line):
			b.WriteString(joinLines(text))
			text = nil

			if !open {
				b.WriteString("\\begin{itemize}\n")
				open = true
			}

			item := strings.TrimSpace(line[1:])
			item = escapeBraces(itemSymbols(textSymbols(item)))

			b.WriteString("  \\item " + item + "\n")
		case line != "":
			if open {
				b.WriteString("\\end{itemize}\n")
				open = false
			}

			text = append(text, escapeBraces(textSymbols(line)))
		}
	}

	b.WriteString(joinLines(text))

	if open {
		b.WriteString("\\end{itemize}\n")
	}

	return b.String() + "\n"
}

func isItem(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "-")
}

// joinLines puts every line on its own row with \newline between consecutive lines
func joinLines(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\\newline")
		}

		b.WriteString("\n")
	}

	return b.String()
}

// italics converts \text\ to \textit{text} and *text* to \emph{text} outside of math
func italics(text string) string {
	return outsideMath(text, func(s string) string {
		s = backslashed.ReplaceAllString(s, "\\textit{${1}}")
		return starred.ReplaceAllString(s, "\\emph{${1}}")
	})
}

// outsideMath applies fn to the parts of text which are not enclosed in $...$
func outsideMath(text string, fn func(string) string) string {
	var b strings.Builder

	parts := strings.Split(text, "$")
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('$')
		}

		// even parts are outside of math, every $ toggles math mode
		if i%2 == 0 {
			part = fn(part)
		}

		b.WriteString(part)
	}

	return b.String()
}

// escapeBraces escapes literal braces outside of math, braces which follow a command name are kept as arguments
func escapeBraces(text string) string {
	var b strings.Builder

	runes := []rune(text)
	math := false
	depth := 0 // open command argument braces

	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '$':
			math = !math
			b.WriteRune(char)
		case math:
			b.WriteRune(char)
		case char == '\\':
			j := i + 1
			for j < len(runes) && isLetter(runes[j]) {
				j++
			}

			b.WriteString(string(runes[i:j]))
			i = j - 1
		case char == '{':
			k := i - 1
			for k >= 0 && runes[k] == ' ' {
				k--
			}

			if k >= 0 && isLetter(runes[k]) {
				b.WriteRune(char)
				depth++
			} else {
				b.WriteString("\\{")
			}
		case char == '}':
			if depth > 0 {
				b.WriteRune(char)
				depth--
			} else {
				b.WriteString("\\}")
			}
		default:
			b.WriteRune(char)
		}
	}

	return b.String()
}

// isLetter returns true for ASCII letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
