package htex

import (
	"regexp"
	"strings"
)

// greek maps names of greek letters to LaTeX commands
var greek = map[string]string{
	"alpha":   "\\alpha",
	"beta":    "\\beta",
	"gamma":   "\\gamma",
	"delta":   "\\delta",
	"epsilon": "\\epsilon",
	"zeta":    "\\zeta",
	"eta":     "\\eta",
	"theta":   "\\theta",
	"iota":    "\\iota",
	"kappa":   "\\kappa",
	"lambda":  "\\lambda",
	"mu":      "\\mu",
	"nu":      "\\nu",
	"xi":      "\\xi",
	"pi":      "\\pi",
	"rho":     "\\rho",
	"sigma":   "\\sigma",
	"tau":     "\\tau",
	"upsilon": "\\upsilon",
	"phi":     "\\varphi",
	"chi":     "\\chi",
	"psi":     "\\psi",
	"omega":   "\\omega",
	"Gamma":   "\\Gamma",
	"Delta":   "\\Delta",
	"Theta":   "\\Theta",
	"Lambda":  "\\Lambda",
	"Xi":      "\\Xi",
	"Pi":      "\\Pi",
	"Sigma":   "\\Sigma",
	"Upsilon": "\\Upsilon",
	"Phi":     "\\Phi",
	"Psi":     "\\Psi",
	"Omega":   "\\Omega",
}

// words are replaced by math symbols in prose only
var words = map[string]string{
	"Teilmenge": "\\subseteq",
	"element":   "\\in",
}

var (
	greekWord  = wordPattern(greek)
	symbolWord = wordPattern(greek, words)
	timesWord  = regexp.MustCompile(`\bx\b`)
)

// wordPattern builds a regexp matching any key of the tables as a whole word
func wordPattern(tables ...map[string]string) *regexp.Regexp {
	var names []string
	for _, table := range tables {
		for name := range table {
			names = append(names, regexp.QuoteMeta(name))
		}
	}

	return regexp.MustCompile(`\b(?:` + strings.Join(names, "|") + `)\b`)
}

// mathSymbols replaces greek letter names in math content, eg. "alpha" becomes "\alpha"
func mathSymbols(text string) string {
	return greekWord.ReplaceAllStringFunc(text, func(name string) string {
		return greek[name]
	})
}

// textSymbols replaces greek letter names and symbol words in prose with inline math, eg. "alpha" becomes "$\alpha$"
func textSymbols(text string) string {
	return outsideMath(text, func(s string) string {
		return symbolWord.ReplaceAllStringFunc(s, func(name string) string {
			if cmd, ok := greek[name]; ok {
				return "$" + cmd + "$"
			}

			return "$" + words[name] + "$"
		})
	})
}

// itemSymbols replaces arrows and standalone "x" in list items
func itemSymbols(text string) string {
	return outsideMath(text, func(s string) string {
		s = strings.ReplaceAll(s, "->", "$\\to$")
		return timesWord.ReplaceAllString(s, "$\\times$")
	})
}
