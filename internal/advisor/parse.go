package advisor

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRe = regexp.MustCompile("```(?:json)?")
	wsRe    = regexp.MustCompile(`\s+`)
)

// parserFunc attempts to turn raw model output into a bounded extension
// list. ok is false when the strategy cannot make sense of the input at all
// and the next strategy should be tried; ok with an empty list means the
// input was understood but held nothing usable.
type parserFunc func(raw string, max int) (exts []string, ok bool)

// Parsing strategies in order of preference: a strict JSON array first,
// then a loose comma-separated fallback for models that ignore the format
// instruction.
var strategies = []struct {
	name  string
	parse parserFunc
}{
	{"json-array", parseJSONArray},
	{"comma-list", parseCommaList},
}

// ParseExtensions tries each parsing strategy in turn and returns the first
// successful result. Extensions come back bare (no leading dot), truncated
// to max, in the model's order. nil means nothing usable was found.
func ParseExtensions(raw string, max int) []string {
	for _, s := range strategies {
		if exts, ok := s.parse(raw, max); ok {
			return exts
		}
	}
	return nil
}

func parseJSONArray(raw string, max int) ([]string, bool) {
	// Models routinely wrap the array in a markdown code fence; strip that
	// and all whitespace before parsing.
	cleaned := fenceRe.ReplaceAllString(strings.TrimSpace(raw), "")
	cleaned = wsRe.ReplaceAllString(cleaned, "")

	var parsed interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, false
	}

	list, isList := parsed.([]interface{})
	if !isList {
		// Valid JSON but not an array; the comma fallback would only
		// manufacture garbage out of it.
		return nil, true
	}

	var strs []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			strs = append(strs, s)
		}
	}
	return cleanExtensions(strs, max), true
}

func parseCommaList(raw string, max int) ([]string, bool) {
	exts := cleanExtensions(strings.Split(strings.TrimSpace(raw), ","), max)
	return exts, len(exts) > 0
}

func cleanExtensions(in []string, max int) []string {
	var out []string
	for _, e := range in {
		e = strings.TrimSpace(e)
		e = strings.Trim(e, ".")
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		out = append(out, e)
		if len(out) == max {
			break
		}
	}
	return out
}
