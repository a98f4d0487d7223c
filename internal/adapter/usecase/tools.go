package usecase

import "andromeda-ads/internal/core/domain"

func numberProp(desc string) map[string]any {
	return map[string]any{"type": "number", "description": desc}
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

// AssistantTools are offered on every chat turn. The client applies the
// returned tool uses to its own state.
var AssistantTools = []domain.ToolDefinition{
	{
		Name:        domain.ToolUpdateConcept,
		Description: "Changes the headline, body, hook or cta of an existing ad concept. Use the 0-based index of the concept in the list.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"index":    numberProp("Concept index (0 = first concept)"),
				"headline": stringProp("New ad headline (max 40 characters)"),
				"body":     stringProp("New ad body (max 125 characters)"),
				"hook":     stringProp("New hook (max 10 words)"),
				"cta":      stringProp("New CTA button text (max 5 words)"),
			},
			"required": []string{"index"},
		},
	},
	{
		Name:        domain.ToolUpdateCampaignSettings,
		Description: "Changes the daily budget (USD), duration (days) or name of the campaign",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dailyBudget":  numberProp("Daily budget in USD"),
				"duration":     numberProp("Campaign duration in days"),
				"campaignName": stringProp("Campaign name"),
			},
		},
	},
	{
		Name:        domain.ToolUpdateTargeting,
		Description: "Changes the campaign targeting: countries, age range or gender",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"countries": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": `ISO country codes (e.g. ["ES","MX","CO"])`,
				},
				"ageMin": numberProp("Minimum age (18-65)"),
				"ageMax": numberProp("Maximum age (18-65)"),
				"gender": map[string]any{
					"type":        "string",
					"enum":        []string{"all", "1", "2"},
					"description": "all=everyone, 1=men, 2=women",
				},
			},
		},
	},
	{
		Name:        domain.ToolSelectConcepts,
		Description: "Selects or deselects concepts by index to include them in the campaign",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"indices": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "number"},
					"description": "List of 0-based indices",
				},
				"action": map[string]any{
					"type":        "string",
					"enum":        []string{"select", "deselect"},
					"description": "Action to perform",
				},
			},
			"required": []string{"indices", "action"},
		},
	},
}
