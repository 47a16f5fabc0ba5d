package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// The model is asked for fenced JSON but routinely returns it bare, buried in
// prose, or peppered with raw control characters. Extraction tries a fixed
// list of named strategies and stops at the first one that parses.
//
// The list depends on whether a fence is present:
//
//	fence found:   fenced -> cleaned-fenced
//	no fence:      whole-response -> embedded-object
//
// A fence that exists but contains broken JSON does NOT fall through to the
// embedded-object scan; the fence is the model telling us where the JSON is,
// and anything outside it is prose.
type extractStrategy struct {
	name    string
	attempt func() (map[string]interface{}, error)
}

// ExtractItineraryJSON turns one raw model response into a loosely-typed
// itinerary object, or ErrNoValidJSON once every strategy is exhausted.
func ExtractItineraryJSON(raw string) (map[string]interface{}, error) {
	var strategies []extractStrategy

	if enclosed, found := firstFencedBlock(raw); found {
		strategies = []extractStrategy{
			{"fenced", func() (map[string]interface{}, error) {
				return parseLooseObject(enclosed)
			}},
			{"cleaned-fenced", func() (map[string]interface{}, error) {
				return parseLooseObject(StripControlChars(enclosed))
			}},
		}
	} else {
		strategies = []extractStrategy{
			{"whole-response", func() (map[string]interface{}, error) {
				return parseLooseObject(raw)
			}},
			{"embedded-object", func() (map[string]interface{}, error) {
				start := strings.Index(raw, "{")
				end := strings.LastIndex(raw, "}")
				if start == -1 || end <= start {
					return nil, fmt.Errorf("no brace-delimited object in response")
				}
				return parseLooseObject(StripControlChars(raw[start : end+1]))
			}},
		}
	}

	for _, s := range strategies {
		obj, err := s.attempt()
		if err == nil {
			log.Printf("itinerary extraction succeeded via %s strategy", s.name)
			return obj, nil
		}
	}

	return nil, ErrNoValidJSON
}

// firstFencedBlock returns the content of the first triple-backtick block,
// optionally tagged "json" on the opening line. Later blocks are ignored.
// Nested backtick runs inside the JSON itself are not handled; the first
// closing fence wins.
func firstFencedBlock(raw string) (string, bool) {
	open := strings.Index(raw, "```")
	if open == -1 {
		return "", false
	}
	rest := raw[open+3:]

	// Strip the optional language tag on the opening line.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		tag := strings.TrimSpace(rest[:nl])
		if tag == "" || strings.EqualFold(tag, "json") {
			rest = rest[nl+1:]
		}
	}

	closing := strings.Index(rest, "```")
	if closing == -1 {
		return "", false
	}
	return rest[:closing], true
}

// parseLooseObject parses text as JSON. null, scalars, arrays and the empty
// object all count as a successful extraction of an empty itinerary; the
// normalizer copes with missing sections on its own.
func parseLooseObject(text string) (map[string]interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]interface{})
	if !ok || obj == nil {
		return map[string]interface{}{}, nil
	}
	return obj, nil
}

// StripControlChars drops U+0000 through U+0019. Gemini occasionally emits
// raw newlines and tabs inside string literals, which encoding/json rejects.
func StripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x19 {
			return -1
		}
		return r
	}, s)
}
