package components

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BodyFormat is how a request body is displayed.
type BodyFormat string

const (
	FormatJSON BodyFormat = "json"
	FormatText BodyFormat = "text"
)

// Upper returns the format name for display.
func (f BodyFormat) Upper() string {
	return strings.ToUpper(string(f))
}

// DetectBodyFormat uses the declared body type first, then looks at the body.
func DetectBodyFormat(bodyType, body string) BodyFormat {
	bt := strings.ToLower(strings.TrimSpace(bodyType))
	if bt == "json" || strings.Contains(bt, "application/json") || strings.HasSuffix(bt, "+json") {
		return FormatJSON
	}

	trimmed := strings.TrimSpace(body)
	if trimmed != "" && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid([]byte(trimmed)) {
		return FormatJSON
	}
	return FormatText
}

// JSONHighlighter colors JSON tokens line by line.
type JSONHighlighter struct {
	keyStyle     lipgloss.Style
	stringStyle  lipgloss.Style
	numberStyle  lipgloss.Style
	literalStyle lipgloss.Style
	punctStyle   lipgloss.Style
}

// NewJSONHighlighter creates a highlighter with the default palette.
func NewJSONHighlighter() *JSONHighlighter {
	return &JSONHighlighter{
		keyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		stringStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		numberStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		literalStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		punctStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// BodyLines returns the display lines of a body. JSON is re-indented and
// highlighted; invalid JSON and plain text are shown as stored.
func (h *JSONHighlighter) BodyLines(bodyType, body string) []string {
	if body == "" {
		return nil
	}
	if DetectBodyFormat(bodyType, body) != FormatJSON {
		return strings.Split(body, "\n")
	}

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(strings.TrimSpace(body)), "", "  "); err != nil {
		return strings.Split(body, "\n")
	}

	lines := strings.Split(out.String(), "\n")
	for i, line := range lines {
		lines[i] = h.Line(line)
	}
	return lines
}

// Line highlights one line of indented JSON.
func (h *JSONHighlighter) Line(line string) string {
	var sb strings.Builder
	chars := []rune(line)

	for i := 0; i < len(chars); {
		ch := chars[i]
		switch {
		case ch == '"':
			end := scanString(chars, i)
			token := string(chars[i:end])
			if isKey(chars, end) {
				sb.WriteString(h.keyStyle.Render(token))
			} else {
				sb.WriteString(h.stringStyle.Render(token))
			}
			i = end
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := scanWhile(chars, i, isNumberRune)
			sb.WriteString(h.numberStyle.Render(string(chars[i:end])))
			i = end
		case ch >= 'a' && ch <= 'z':
			end := scanWhile(chars, i, func(r rune) bool { return r >= 'a' && r <= 'z' })
			word := string(chars[i:end])
			if word == "true" || word == "false" || word == "null" {
				sb.WriteString(h.literalStyle.Render(word))
			} else {
				sb.WriteString(word)
			}
			i = end
		case strings.ContainsRune("{}[]:,", ch):
			sb.WriteString(h.punctStyle.Render(string(ch)))
			i++
		default:
			sb.WriteRune(ch)
			i++
		}
	}
	return sb.String()
}

// scanString returns the index just past the string literal starting at start.
func scanString(chars []rune, start int) int {
	for i := start + 1; i < len(chars); i++ {
		switch chars[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(chars)
}

func scanWhile(chars []rune, start int, ok func(rune) bool) int {
	i := start
	for i < len(chars) && (i == start || ok(chars[i])) {
		i++
	}
	return i
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(".eE+-", r)
}

func isKey(chars []rune, from int) bool {
	for i := from; i < len(chars); i++ {
		switch chars[i] {
		case ' ', '\t':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}
