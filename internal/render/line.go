package render

import "strings"

// Segment is one span of a rendered line with a single style.
type Segment struct {
	Text string
	Tag  StyleTag
}

// Line is one row of tree output. Keeping rows as structured segments lets
// the styled and plain serializations come from the same data instead of
// stripping control codes out of strings.
type Line []Segment

// Plain returns the line's text with no styling.
func (l Line) Plain() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Styled returns the line with each segment rendered through the theme.
func (l Line) Styled(t Theme) string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(t.style(s.Tag).Render(s.Text))
	}
	return sb.String()
}

// PlainText joins lines into the plain-text document used for export.
func PlainText(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Plain()
	}
	return strings.Join(parts, "\n")
}

// StyledText joins lines into the styled document shown in a terminal.
func StyledText(lines []Line, t Theme) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Styled(t)
	}
	return strings.Join(parts, "\n")
}
