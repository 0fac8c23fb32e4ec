package analysis

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"PropInspect-Backend/domain"
)

type parsedAnalysis struct {
	Description      string
	CleanlinessScore int
}

var (
	fencedJSONPattern  = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	braceObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	scoreNearKeyword   = regexp.MustCompile(`(?i)(?:score|clean|rating)\D{0,20}?(\d{1,2})`)
	scoreOutOfTen      = regexp.MustCompile(`(\d{1,2})\s*/\s*10`)
	fenceMarker        = regexp.MustCompile("```[a-zA-Z]*")
)

// ClampScore forces a cleanliness score into the valid [1,10] range.
func ClampScore(score int) int {
	if score < domain.MinCleanlinessScore {
		return domain.MinCleanlinessScore
	}
	if score > domain.MaxCleanlinessScore {
		return domain.MaxCleanlinessScore
	}
	return score
}

type rawAnalysis struct {
	Description      string      `json:"description"`
	CleanlinessScore json.Number `json:"cleanliness_score"`
}

func tryParseJSON(text string) (parsedAnalysis, bool) {
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return parsedAnalysis{}, false
	}
	if raw.Description == "" {
		return parsedAnalysis{}, false
	}

	score := domain.DefaultCleanlinessScore
	if raw.CleanlinessScore != "" {
		if f, err := raw.CleanlinessScore.Float64(); err == nil {
			score = int(math.Round(f))
		}
	}

	return parsedAnalysis{
		Description:      strings.TrimSpace(raw.Description),
		CleanlinessScore: ClampScore(score),
	}, true
}

// ParseAnalysisText extracts a {description, cleanliness_score} pair out of a
// model reply. It tries, in order: a fenced JSON block, the first
// brace-delimited object, the whole reply as JSON, and finally a heuristic
// extractor that never fails. The returned score is always within [1,10].
func ParseAnalysisText(text string) parsedAnalysis {
	if match := fencedJSONPattern.FindStringSubmatch(text); match != nil {
		if parsed, ok := tryParseJSON(match[1]); ok {
			return parsed
		}
	}

	if match := braceObjectPattern.FindString(text); match != "" {
		if parsed, ok := tryParseJSON(match); ok {
			return parsed
		}
	}

	if parsed, ok := tryParseJSON(strings.TrimSpace(text)); ok {
		return parsed
	}

	return heuristicExtract(text)
}

// heuristicExtract is the last-resort parser: it scans for a numeric token
// near score-ish words, defaults to 7 when nothing usable is found, and uses
// the cleaned reply as the description.
func heuristicExtract(text string) parsedAnalysis {
	score := domain.DefaultCleanlinessScore

	if match := scoreOutOfTen.FindStringSubmatch(text); match != nil {
		if n, ok := atoiSafe(match[1]); ok {
			score = n
		}
	} else if match := scoreNearKeyword.FindStringSubmatch(text); match != nil {
		if n, ok := atoiSafe(match[1]); ok {
			score = n
		}
	}

	description := fenceMarker.ReplaceAllString(text, "")
	description = strings.ReplaceAll(description, "```", "")
	description = strings.TrimSpace(description)
	if description == "" {
		description = "No description available"
	}

	return parsedAnalysis{
		Description:      description,
		CleanlinessScore: ClampScore(score),
	}
}

func atoiSafe(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
