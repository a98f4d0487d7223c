package domain

import (
	"fmt"
	"strings"
)

// ConceptSetSize is the number of concepts produced per generation call.
const ConceptSetSize = 10

// Concept is one candidate ad creative generated from a briefing.
type Concept struct {
	Angle         string `json:"angle"`
	Hook          string `json:"hook"`
	Headline      string `json:"headline"`
	Body          string `json:"body"`
	CTA           string `json:"cta"`
	PainPoint     string `json:"painPoint"`
	TargetEmotion string `json:"targetEmotion"`
	Selected      bool   `json:"selected"`
	ImageB64      string `json:"imageB64,omitempty"`
}

// SuggestedAngles seeds the concept prompt with one sales angle per concept.
var SuggestedAngles = []string{
	"FOMO", "Social proof", "Transformation", "Problem-Solution", "Desire/Aspiration",
	"Identity", "Offer/Urgency", "Storytelling", "Educational", "Curiosity",
}

// ValidateConceptSet checks that cs holds exactly ConceptSetSize concepts
// with non-empty, pairwise distinct angles (case and surrounding space
// insensitive).
func ValidateConceptSet(cs []Concept) error {
	if len(cs) != ConceptSetSize {
		return fmt.Errorf("expected %d concepts, got %d", ConceptSetSize, len(cs))
	}
	seen := make(map[string]int, len(cs))
	for i, c := range cs {
		key := strings.ToLower(strings.TrimSpace(c.Angle))
		if key == "" {
			return fmt.Errorf("concept %d has no angle", i)
		}
		if j, ok := seen[key]; ok {
			return fmt.Errorf("concepts %d and %d share angle %q", j, i, c.Angle)
		}
		seen[key] = i
	}
	return nil
}

// Truncate cuts s to at most n runes. Platform name and copy fields have
// hard length limits.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
