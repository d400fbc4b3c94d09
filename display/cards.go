package display

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TechPreview returns at most n tags and how many were left out.
func TechPreview(techs []string, n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(techs) <= n {
		return techs, 0
	}
	return techs[:n], len(techs) - n
}

// Initials builds the image placeholder text from the first letters of the
// first two words of title.
func Initials(title string) string {
	var b strings.Builder
	for _, word := range strings.Fields(title) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

// EmptyMessage is the text shown when a listing has no results.
func EmptyMessage(kind, search string) string {
	if search != "" {
		return fmt.Sprintf("No %s match your search for \"%s\"", kind, search)
	}
	return fmt.Sprintf("No %s available at the moment", kind)
}
