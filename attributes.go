package htex

import (
	"regexp"
	"strings"
)

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

// Package is a LaTeX package loaded in the preamble.
type Package struct {
	Name    string
	Options string
}

func (p Package) String() string {
	if p.Options == "" {
		return "\\usepackage{" + p.Name + "}"
	}

	return "\\usepackage[" + p.Options + "]{" + p.Name + "}"
}

// ParsePackages parses package list in this format: name=options, name, for example: inputenc=utf8, amsmath.
// Multiple options of one package are separated by ";", for example: babel=ngerman;english.
// Order of the list is kept since it matters for LaTeX.
func ParsePackages(raw string) (packages []Package) {
	raw = whitespaces.ReplaceAllString(raw, "") // package names and options never contain spaces

	for _, part := range strings.Split(raw, ",") {
		if part == "" {
			continue
		}

		n := strings.SplitN(part, "=", 2)
		if len(n) == 1 {
			packages = append(packages, Package{Name: n[0]})
			continue
		}

		packages = append(packages, Package{Name: n[0], Options: strings.ReplaceAll(n[1], ";", ",")})
	}

	return
}
