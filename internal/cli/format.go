package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/bloom/internal/domain"
)

// columnGap separates a listing's left column from its right one
const columnGap = 5

// bandLabel renders a growth band for display, e.g. "Gone To Seed"
func bandLabel(band domain.GrowthBand) string {
	return cases.Title(language.English).String(string(band))
}

// column pads styled text to width using the length of its plain form
func column(plain, styled string, width int) string {
	pad := width - utf8.RuneCountInString(plain)
	if pad < 0 {
		pad = 0
	}
	return styled + strings.Repeat(" ", pad)
}

// maxWidth returns the widest of the given plain strings
func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		width = max(width, utf8.RuneCountInString(v))
	}
	return width
}

// parseIndex accepts any integer; range checks happen in the core
func parseIndex(arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	return n, err == nil
}
