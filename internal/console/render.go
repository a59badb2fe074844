package console

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	completedLine = regexp.MustCompile(`^(\d+)\. ✓ (.*)$`)
	pendingLine   = regexp.MustCompile(`^(\d+)\. ○ (.*)$`)
)

// ANSI styles for terminal output.
const (
	styleReset  = "\x1b[0m"
	styleStrike = "\x1b[9;2m"
	styleGreen  = "\x1b[32m"
	styleDim    = "\x1b[2m"
)

// Render classifies each line of an assistant reply. It never fails:
// anything it does not recognise is plain text.
func Render(text string) []Line {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, classify(l))
	}
	return lines
}

func classify(l string) Line {
	trimmed := strings.TrimSpace(l)

	if m := completedLine.FindStringSubmatch(trimmed); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Line{Kind: LineCompleted, Number: n, Text: m[2]}
	}
	if m := pendingLine.FindStringSubmatch(trimmed); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Line{Kind: LinePending, Number: n, Text: m[2]}
	}
	if strings.HasPrefix(trimmed, "- ") {
		return Line{Kind: LineBullet, Text: strings.TrimPrefix(trimmed, "- ")}
	}
	if strings.HasPrefix(trimmed, "✓") {
		return Line{Kind: LineSuccess, Text: trimmed}
	}
	return Line{Kind: LinePlain, Text: l}
}

// Format turns rendered lines back into terminal text, styled when color is set.
func Format(lines []Line, color bool) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatLine(l, color))
	}
	return b.String()
}

func formatLine(l Line, color bool) string {
	switch l.Kind {
	case LineCompleted:
		prefix := strconv.Itoa(l.Number) + ". ✓ "
		if color {
			return prefix + styleStrike + l.Text + styleReset
		}
		return prefix + l.Text
	case LinePending:
		return strconv.Itoa(l.Number) + ". ○ " + l.Text
	case LineBullet:
		if color {
			return "   " + styleDim + "• " + l.Text + styleReset
		}
		return "   • " + l.Text
	case LineSuccess:
		if color {
			return styleGreen + l.Text + styleReset
		}
		return l.Text
	default:
		return l.Text
	}
}

// FormatTask renders one task the way the assistant lists it.
func FormatTask(index int, title, description string, completed bool, color bool) string {
	kind := LinePending
	if completed {
		kind = LineCompleted
	}
	lines := []Line{{Kind: kind, Number: index, Text: title}}
	if description != "" {
		lines = append(lines, Line{Kind: LineBullet, Text: description})
	}
	return Format(lines, color)
}
