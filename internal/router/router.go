package router

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// locationPattern captures the text following the last "in", "at" or "for"
// in the message, e.g. "weather in Paris" -> "Paris". The greedy prefix
// makes the final preposition win when several are present.
var locationPattern = regexp.MustCompile(`(?is)^.*\b(?:in|at|for)\s+(.+)$`)

// Classify determines user intent from a message.
// Convention: Method accepts context.Context as first parameter
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	keyword, ok := matchWeatherKeyword(message)
	if !ok {
		r.l.Debugf(ctx, "%s: classified as %s", LogPrefixClassify, IntentGeneral)
		return RouterOutput{Intent: IntentGeneral}
	}

	out := RouterOutput{
		Intent:         IntentWeather,
		MatchedKeyword: keyword,
	}
	if loc, ok := extractLocation(message); ok {
		out.Location = loc
		out.HasLocation = true
	}

	r.l.Debugf(ctx, "%s: classified as %s (keyword=%q location=%q)",
		LogPrefixClassify, out.Intent, out.MatchedKeyword, out.Location)
	return out
}

// matchWeatherKeyword reports the first weather keyword present in the
// message. Matching is on whole words of the lower-cased input, so "rain"
// does not fire inside "training".
func matchWeatherKeyword(message string) (string, bool) {
	words := make(map[string]struct{})
	for _, w := range splitWords(strings.ToLower(message)) {
		words[w] = struct{}{}
	}

	for _, kw := range weatherKeywords {
		if _, ok := words[kw]; ok {
			return kw, true
		}
	}
	return "", false
}

// extractLocation pulls a location name out of the message using the
// "in/at/for <place>" heuristic. The tail is taken verbatim from the
// original message (casing preserved) with surrounding punctuation
// stripped. A missing or empty tail means no location was found, which
// is a different case from the provider not recognizing the name.
func extractLocation(message string) (string, bool) {
	m := locationPattern.FindStringSubmatch(strings.TrimSpace(message))
	if m == nil {
		return "", false
	}

	loc := strings.Trim(m[1], locationCutset)
	if loc == "" {
		return "", false
	}
	return loc, true
}

// splitWords splits on anything that is not a letter or digit.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
