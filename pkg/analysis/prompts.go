package analysis

import (
	"fmt"
	"strings"
)

// cleanlinessPrompt instructs the model to reply with strict JSON and a fixed
// 1-10 rubric so the response can be parsed without guesswork.
func cleanlinessPrompt(inspectionType, roomName string) string {
	return fmt.Sprintf(
		"You are a property inspector performing a %s inspection. "+
			"Analyze this photo of the %s and respond ONLY with a valid JSON object "+
			"containing exactly these fields: 'description' (string, the condition and "+
			"cleanliness of the room) and 'cleanliness_score' (integer from 1 to 10). "+
			"Scoring rubric: 1-2 very dirty or damaged, 3-4 dirty, 5-6 average, "+
			"7-8 clean, 9-10 perfectly clean. "+
			"Do not include any explanations, markdown formatting, or extra text.",
		inspectionType, roomName,
	)
}

var roomChecklists = map[string]string{
	"kitchen": "countertops and splashback, sink and taps, stovetop and rangehood, " +
		"oven interior, cabinet fronts and interiors, floor condition, signs of pests or mould",
	"bathroom": "shower screen and tiles, grout and sealant condition, toilet, vanity and " +
		"mirror, exhaust fan, floor condition, signs of mould or water damage",
	"bedroom": "walls and ceiling, carpet or flooring, windows and coverings, wardrobe " +
		"interior, light fittings, power points",
	"living room": "walls and ceiling, flooring condition, windows and coverings, " +
		"light fittings, power points, general wear and tear",
}

const defaultChecklist = "walls and ceiling, flooring condition, windows, fittings and " +
	"fixtures, general cleanliness, visible damage"

// checklistPrompt produces the room-type-specific prompt used by the generic
// room analysis endpoint. The reply is free-form structured markdown.
func checklistPrompt(inspectionType, roomName, roomType string) string {
	key := strings.ToLower(strings.TrimSpace(roomType))
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(roomName))
	}

	checklist, ok := roomChecklists[key]
	if !ok {
		checklist = defaultChecklist
	}

	return fmt.Sprintf(
		"You are a property inspector performing a %s inspection of a %s. "+
			"Assess the photo against this checklist: %s. "+
			"Reply in markdown with a short heading per checklist item, a one-line "+
			"assessment for each, and a final 'Overall' section summarising the room's condition.",
		inspectionType, roomName, checklist,
	)
}
