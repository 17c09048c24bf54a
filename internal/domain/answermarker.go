package domain

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Unresolved is the sentinel index returned when no resolution rule matches.
const Unresolved = -1

type markerKind int

const (
	markerNone markerKind = iota
	markerIndex
	markerLetter
	markerText
	markerComposite
)

// compositePattern matches "B) text" and "B. text" style markers.
var compositePattern = regexp.MustCompile(`^([A-Da-d])[).]\s*(\S.*)$`)

// AnswerMarker is the untyped correctness signal attached to a generated
// question. The completion service may emit it as a zero-based index, a
// letter A-D, the full option text, a "letter) text" composite, or a
// substring hint. It is classified once at decode time and resolved against
// the option list on demand.
type AnswerMarker struct {
	kind   markerKind
	index  int
	letter byte
	text   string
	raw    json.RawMessage
}

// MarkerFromIndex builds an index-shaped marker. Used by tests and by the
// grading path when the key is already canonical.
func MarkerFromIndex(i int) AnswerMarker {
	return AnswerMarker{kind: markerIndex, index: i, raw: json.RawMessage(strconv.Itoa(i))}
}

// MarkerFromString classifies a textual marker.
func MarkerFromString(s string) AnswerMarker {
	m := classifyString(s)
	if data, err := json.Marshal(s); err == nil {
		m.raw = data
	}
	return m
}

// UnmarshalJSON accepts numbers, numeric strings, and free-form strings.
func (m *AnswerMarker) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*m = AnswerMarker{raw: json.RawMessage("null")}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = AnswerMarker{kind: markerIndex, index: n, raw: append(json.RawMessage(nil), data...)}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Unexpected shape (object, array, bool). Keep it unresolved instead
		// of failing the whole payload.
		*m = AnswerMarker{raw: append(json.RawMessage(nil), data...)}
		return nil
	}
	parsed := classifyString(s)
	parsed.raw = append(json.RawMessage(nil), data...)
	*m = parsed
	return nil
}

// MarshalJSON re-emits the marker exactly as it arrived.
func (m AnswerMarker) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return json.Marshal("")
	}
	return m.raw, nil
}

func classifyString(s string) AnswerMarker {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnswerMarker{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return AnswerMarker{kind: markerIndex, index: n}
	}
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'd' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'D' {
			return AnswerMarker{kind: markerLetter, letter: c}
		}
	}
	if parts := compositePattern.FindStringSubmatch(s); parts != nil {
		c := parts[1][0]
		if c >= 'a' && c <= 'd' {
			c -= 'a' - 'A'
		}
		return AnswerMarker{kind: markerComposite, letter: c, text: strings.TrimSpace(parts[2])}
	}
	return AnswerMarker{kind: markerText, text: s}
}

// Resolve maps the marker onto an index into options. The rule order is the
// contract: index, letter, composite (letter first, then text), exact text,
// substring containment. Returns (Unresolved, false) when nothing matches.
// Pure function of (options, marker).
func (m AnswerMarker) Resolve(options []string) (int, bool) {
	switch m.kind {
	case markerIndex:
		if m.index >= 0 && m.index < len(options) {
			return m.index, true
		}
	case markerLetter:
		if i := int(m.letter - 'A'); i < len(options) {
			return i, true
		}
	case markerComposite:
		if i := int(m.letter - 'A'); i < len(options) {
			return i, true
		}
		return matchText(options, m.text)
	case markerText:
		return matchText(options, m.text)
	}
	return Unresolved, false
}

// String reports the marker in a loggable form.
func (m AnswerMarker) String() string {
	switch m.kind {
	case markerIndex:
		return strconv.Itoa(m.index)
	case markerLetter:
		return string(m.letter)
	case markerComposite:
		return string(m.letter) + ") " + m.text
	case markerText:
		return m.text
	default:
		return "<none>"
	}
}

func matchText(options []string, text string) (int, bool) {
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), text) {
			return i, true
		}
	}
	if len(text) > 2 {
		lower := strings.ToLower(text)
		for i, opt := range options {
			optLower := strings.ToLower(strings.TrimSpace(opt))
			if optLower == "" {
				continue
			}
			if strings.Contains(optLower, lower) || strings.Contains(lower, optLower) {
				return i, true
			}
		}
	}
	return Unresolved, false
}
