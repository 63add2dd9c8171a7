package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Column selects which text lines a rendered block carries.
type Column int

const (
	ColumnSource Column = iota
	ColumnTranslation
)

// formatSRTTime converts seconds to SRT time format HH:MM:SS,mmm.
func formatSRTTime(seconds float64) string {
	totalSec := math.Abs(seconds)
	hours := int(totalSec / 3600)
	remainder := math.Mod(totalSec, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Mod(secs, 1) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, int(secs), millis)
}

// formatVTTTime converts seconds to WebVTT time format HH:MM:SS.mmm.
func formatVTTTime(seconds float64) string {
	return strings.Replace(formatSRTTime(seconds), ",", ".", 1)
}

func (s *Segment) textLines(columns []Column) []string {
	var lines []string
	for _, col := range columns {
		switch col {
		case ColumnSource:
			if s.DisplaySource != "" {
				lines = append(lines, s.DisplaySource)
			}
		case ColumnTranslation:
			if s.DisplayTranslation != "" {
				lines = append(lines, s.DisplayTranslation)
			}
		}
	}
	return lines
}

// RenderSRT renders segments as an SRT document with the requested text
// columns, one block per segment.
func RenderSRT(segments []Segment, columns []Column) string {
	var sb strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n", i+1, formatSRTTime(seg.Start), formatSRTTime(seg.End))
		for _, line := range seg.textLines(columns) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if i < len(segments)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderVTT renders segments as a WebVTT document.
func RenderVTT(segments []Segment, columns []Column) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, seg := range segments {
		fmt.Fprintf(&sb, "%s --> %s\n", formatVTTTime(seg.Start), formatVTTTime(seg.End))
		for _, line := range seg.textLines(columns) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if i < len(segments)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

var (
	cjkStops  = regexp.MustCompile(`[，。]`)
	spaceRuns = regexp.MustCompile(`\s+`)
)

// PrepareDisplay fills the display fields from the raw texts: CJK commas and
// periods become spaces and whitespace runs collapse.
func PrepareDisplay(segments []Segment) {
	for i := range segments {
		segments[i].DisplaySource = cleanDisplayText(segments[i].SourceText)
		segments[i].DisplayTranslation = cleanDisplayText(segments[i].TranslatedText)
	}
}

func cleanDisplayText(text string) string {
	if text == "" {
		return ""
	}
	text = cjkStops.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
