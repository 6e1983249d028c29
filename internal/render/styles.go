// Package render produces the visual tree representation of a directory.
package render

import "github.com/charmbracelet/lipgloss"

// StyleTag identifies which theme style applies to a segment.
type StyleTag int

const (
	TagFrame      StyleTag = iota // connector and prefix glyphs
	TagDir                        // directory labels
	TagFile                       // file labels
	TagAnnotation                 // [Modified: ...] and [Size: ...] suffixes
)

// Theme maps style tags to lipgloss styles.
type Theme struct {
	Frame      lipgloss.Style
	Dir        lipgloss.Style
	File       lipgloss.Style
	Annotation lipgloss.Style
}

// DefaultTheme returns the standard palette: white frame and annotations,
// blue directories, green files.
func DefaultTheme() Theme {
	return Theme{
		Frame:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Dir:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		File:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Annotation: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// style returns the lipgloss style for a tag.
func (t Theme) style(tag StyleTag) lipgloss.Style {
	switch tag {
	case TagDir:
		return t.Dir
	case TagFile:
		return t.File
	case TagAnnotation:
		return t.Annotation
	default:
		return t.Frame
	}
}
