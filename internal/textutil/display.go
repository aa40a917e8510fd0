package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separatorReplacer = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// DisplayName turns an identifier such as "image_path" into a header label
// ("Image Path"). Blank input yields "".
func DisplayName(name string) string {
	name = strings.Join(strings.Fields(separatorReplacer.Replace(name)), " ")
	if name == "" {
		return ""
	}
	return cases.Title(language.Und).String(name)
}

// DisplayNames applies DisplayName to each identifier.
func DisplayNames(names ...string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = DisplayName(name)
	}
	return out
}
