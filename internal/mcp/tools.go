package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "rank_sports",
		Description: "Rank sports by suitability for the stored physical stats and sports assessment. Returns score (0-100), match reason and improvement areas per sport.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return (default from config, usually 10)",
				},
			},
		},
	},
	{
		Name:        "get_holistic_profile",
		Description: "Get the holistic profile across skills, personality, sports and creative assessments: headline indices, academic streams, career domains, sports clusters and creative fields.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	},
	{
		Name:        "scholarship_status",
		Description: "Get one scholarship with its live deadline status (OPEN, CLOSING_SOON, CLOSED, OPENING_SOON, ANNOUNCED) and days left.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Scholarship ID",
				},
			},
			"required": []string{"id"},
		},
	},
	{
		Name:        "list_scholarships",
		Description: "List scholarships with their deadline status, optionally filtered by eligibility.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Case-insensitive match on name or provider",
				},
				"social_groups":  stringList("Social groups of the student; records open to All always match"),
				"career_goals":   stringList("Career goals of the student"),
				"levels":         stringList("Levels such as national or state"),
				"provider_types": stringList("Provider types such as govt or private"),
				"art_fields":     stringList("Art fields; restricts results to Arts scholarships"),
				"income": map[string]any{
					"type":        "string",
					"enum":        []string{"all", "low", "mid", "high"},
					"description": "Family income bracket",
				},
				"open_only": map[string]any{
					"type":        "boolean",
					"description": "Only scholarships not yet closed, soonest deadline first",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
}
