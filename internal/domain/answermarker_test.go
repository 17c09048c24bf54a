package domain

import (
	"encoding/json"
	"testing"
)

var cityOptions = []string{"Paris", "London", "Rome", "Berlin"}

func TestResolveLetterMarker(t *testing.T) {
	idx, ok := MarkerFromString("B").Resolve(cityOptions)
	if !ok || idx != 1 {
		t.Fatalf("expected B to resolve to 1, got (%d, %v)", idx, ok)
	}

	idx, ok = MarkerFromString("c").Resolve(cityOptions)
	if !ok || idx != 2 {
		t.Fatalf("expected lowercase c to resolve to 2, got (%d, %v)", idx, ok)
	}
}

func TestResolveIndexMarker(t *testing.T) {
	idx, ok := MarkerFromIndex(2).Resolve(cityOptions)
	if !ok || idx != 2 {
		t.Fatalf("expected index 2 to resolve to 2, got (%d, %v)", idx, ok)
	}

	if _, ok := MarkerFromIndex(7).Resolve(cityOptions); ok {
		t.Fatalf("expected out-of-range index to stay unresolved")
	}
	if _, ok := MarkerFromIndex(-1).Resolve(cityOptions); ok {
		t.Fatalf("expected negative index to stay unresolved")
	}
}

func TestResolveTextMarker(t *testing.T) {
	idx, ok := MarkerFromString("Rome").Resolve(cityOptions)
	if !ok || idx != 2 {
		t.Fatalf("expected Rome to resolve to 2, got (%d, %v)", idx, ok)
	}

	idx, ok = MarkerFromString("rome").Resolve(cityOptions)
	if !ok || idx != 2 {
		t.Fatalf("expected case-insensitive match, got (%d, %v)", idx, ok)
	}
}

func TestResolveCompositeMarker(t *testing.T) {
	idx, ok := MarkerFromString("C) Rome").Resolve(cityOptions)
	if !ok || idx != 2 {
		t.Fatalf("expected C) Rome to resolve to 2, got (%d, %v)", idx, ok)
	}

	idx, ok = MarkerFromString("b. London").Resolve(cityOptions)
	if !ok || idx != 1 {
		t.Fatalf("expected b. London to resolve to 1, got (%d, %v)", idx, ok)
	}

	// Letter out of range for a short list falls back to text matching.
	idx, ok = MarkerFromString("D) Rome").Resolve([]string{"Paris", "Rome"})
	if !ok || idx != 1 {
		t.Fatalf("expected text fallback to resolve to 1, got (%d, %v)", idx, ok)
	}
}

func TestResolveSubstringMarker(t *testing.T) {
	options := []string{"The capital is Paris", "The capital is London", "Rome", "Berlin"}
	idx, ok := MarkerFromString("London").Resolve(options)
	if !ok || idx != 1 {
		t.Fatalf("expected substring match on 1, got (%d, %v)", idx, ok)
	}

	// Markers of length <= 2 do not participate in substring matching.
	if _, ok := MarkerFromString("is").Resolve(options); ok {
		t.Fatalf("expected short marker to stay unresolved")
	}
}

func TestResolveUnmatchedMarker(t *testing.T) {
	idx, ok := MarkerFromString("blue").Resolve(cityOptions)
	if ok || idx != Unresolved {
		t.Fatalf("expected unresolved, got (%d, %v)", idx, ok)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	m := MarkerFromString("C) Rome")
	first, _ := m.Resolve(cityOptions)
	for i := 0; i < 10; i++ {
		if got, _ := m.Resolve(cityOptions); got != first {
			t.Fatalf("resolution changed between calls: %d vs %d", first, got)
		}
	}
}

func TestMarkerJSONRoundTrip(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`2`, 2},
		{`"2"`, 2},
		{`"B"`, 1},
		{`"Rome"`, 2},
		{`"C) Rome"`, 2},
	}
	for _, tc := range cases {
		var m AnswerMarker
		if err := json.Unmarshal([]byte(tc.raw), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		idx, ok := m.Resolve(cityOptions)
		if !ok || idx != tc.want {
			t.Fatalf("marker %s resolved to (%d, %v), want %d", tc.raw, idx, ok, tc.want)
		}

		out, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal %s: %v", tc.raw, err)
		}
		if string(out) != tc.raw {
			t.Fatalf("marker %s re-marshaled as %s", tc.raw, out)
		}
	}
}

func TestMarkerUnexpectedShapes(t *testing.T) {
	for _, raw := range []string{`null`, `true`, `{"a":1}`, `[1,2]`} {
		var m AnswerMarker
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatalf("unmarshal %s should not fail: %v", raw, err)
		}
		if _, ok := m.Resolve(cityOptions); ok {
			t.Fatalf("marker %s should stay unresolved", raw)
		}
	}
}

func TestNextDifficulty(t *testing.T) {
	cases := []struct {
		percentage int
		want       Difficulty
	}{
		{100, DifficultyHard},
		{80, DifficultyHard},
		{79, DifficultyMedium},
		{60, DifficultyMedium},
		{50, DifficultyMedium},
		{49, DifficultyEasy},
		{0, DifficultyEasy},
	}
	for _, tc := range cases {
		if got := NextDifficulty(tc.percentage); got != tc.want {
			t.Fatalf("NextDifficulty(%d) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if got := ParseDifficulty("hard"); got != DifficultyHard {
		t.Fatalf("expected hard, got %s", got)
	}
	if got := ParseDifficulty("impossible"); got != DifficultyMedium {
		t.Fatalf("expected fallback to medium, got %s", got)
	}
	if got := ParseDifficulty(""); got != DifficultyMedium {
		t.Fatalf("expected default medium, got %s", got)
	}
}
