package cli

import "github.com/osse101/bloom/internal/domain"

// Palette holds the ANSI codes of one display theme
type Palette struct {
	Name    string
	Prompt  string
	Command string
	Usage   string
	Alias   string
	Error   string
	Message string
	Heading string
}

var (
	darkPalette = Palette{
		Name:    "dark",
		Prompt:  "\033[1;32m",
		Command: "\033[0;36m",
		Usage:   "\033[0;33m",
		Alias:   "\033[1;36m",
		Error:   "\033[0;31m",
		Message: "\033[1;35m",
		Heading: "\033[1;37m",
	}

	lightPalette = Palette{
		Name:    "light",
		Prompt:  "\033[1;34m",
		Command: "\033[0;34m",
		Usage:   "\033[0;35m",
		Alias:   "\033[1;34m",
		Error:   "\033[1;31m",
		Message: "\033[0;32m",
		Heading: "\033[1;30m",
	}
)

// PaletteFor maps a saved theme id to its palette
func PaletteFor(theme int) Palette {
	if theme == domain.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Style wraps text in palette colors. A plain Style writes no escape codes.
type Style struct {
	palette Palette
	plain   bool
}

func (s Style) wrap(code, text string) string {
	if s.plain || code == "" {
		return text
	}
	return code + text + ansiReset
}

func (s Style) Name() string               { return s.palette.Name }
func (s Style) Prompt(text string) string  { return s.wrap(s.palette.Prompt, text) }
func (s Style) Command(text string) string { return s.wrap(s.palette.Command, text) }
func (s Style) Usage(text string) string   { return s.wrap(s.palette.Usage, text) }
func (s Style) Alias(text string) string   { return s.wrap(s.palette.Alias, text) }
func (s Style) Error(text string) string   { return s.wrap(s.palette.Error, text) }
func (s Style) Message(text string) string { return s.wrap(s.palette.Message, text) }
func (s Style) Heading(text string) string { return s.wrap(s.palette.Heading, text) }
