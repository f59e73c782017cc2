package generation

import (
	"fmt"
	"strings"
)

// Prompt builders for each generation task. Each is a pure function of its
// parameters: it states the exact JSON shape expected from the model
// (field names and types), embeds any required cardinality, and instructs
// the model to return only the object with no prose wrapper. The model is
// not trusted to honor any of this; the extractor and the orchestrator's
// normalization enforce the contract downstream.

// RoadmapPrompt builds the prompt for generating a career roadmap for the
// given role.
func RoadmapPrompt(roleName string) string {
	return fmt.Sprintf(`You are a career guidance expert. Generate a comprehensive career roadmap for: %s

Your response MUST be a valid JSON object with this EXACT structure:
{
    "role": "%s",
    "required_skills": [
        "skill1",
        "skill2",
        "skill3"
    ],
    "learning_path": [
        {
            "phase": "Fundamentals",
            "topics": ["topic1", "topic2"],
            "duration_weeks": 4
        },
        {
            "phase": "Intermediate",
            "topics": ["topic3", "topic4"],
            "duration_weeks": 8
        },
        {
            "phase": "Advanced",
            "topics": ["topic5", "topic6"],
            "duration_weeks": 8
        }
    ],
    "recommended_projects": [
        "project1",
        "project2"
    ]
}

Generate a detailed and practical roadmap. Return ONLY the JSON object, no additional text.`, roleName, roleName)
}

// DailyPlanPrompt builds the prompt for generating a day-by-day study plan.
// It embeds the exact number of entries required; the orchestrator still
// normalizes the result to that count because the model routinely produces
// more or fewer.
func DailyPlanPrompt(roleName string, durationDays int) string {
	return fmt.Sprintf(`You are a learning plan expert. Create a %d-day study plan for: %s

Your response MUST be a valid JSON object with this EXACT structure:
{
    "total_days": %d,
    "daily_plan": [
        {
            "day": 1,
            "topic": "Introduction to %s - Overview and Setup",
            "estimated_hours": 3
        },
        {
            "day": 2,
            "topic": "Core Concepts Part 1",
            "estimated_hours": 4
        }
    ]
}

Requirements:
- Create exactly %d daily entries
- Each day should have a focused topic
- Estimated hours should be realistic (2-6 hours per day)
- Topics should build progressively
- Cover fundamentals to advanced concepts

Return ONLY the JSON object, no additional text.`,
		durationDays, roleName, durationDays, roleName, durationDays)
}

// TeachTopicPrompt builds the prompt for explaining a topic, optionally
// narrowed by additional context from the caller.
func TeachTopicPrompt(topic, context string) string {
	contextText := ""
	if context != "" {
		contextText = fmt.Sprintf("\n\nAdditional context: %s", context)
	}
	topicEncoded := strings.ReplaceAll(topic, " ", "+")

	return fmt.Sprintf(`You are an expert teacher. Explain the following topic: %s%s

CRITICAL: Your response must be ONLY a JSON object. NO code examples, NO markdown, NO explanations outside the JSON.

Return this EXACT JSON structure:
{
    "topic": "%s",
    "explanation": "A clear, detailed explanation of the topic. Use \\n for line breaks within this string.",
    "examples": [
        "Example 1: Brief description of the example",
        "Example 2: Brief description of the example",
        "Example 3: Brief description of the example"
    ],
    "resources": [
        "Official Documentation: [actual official docs URL for %s]",
        "GeeksforGeeks Tutorial: https://www.geeksforgeeks.org/%s/",
        "W3Schools Guide: https://www.w3schools.com/[relevant-section]",
        "Code With Harry - %s: https://www.youtube.com/results?search_query=code+with+harry+%s",
        "Apna College - %s: https://www.youtube.com/results?search_query=apna+college+%s",
        "Chai aur Code - %s: https://www.youtube.com/results?search_query=chai+aur+code+%s",
        "Scaler Article: https://www.scaler.com/topics/[relevant-topic]"
    ]
}

RULES:
1. Return ONLY valid JSON - no code blocks, no markdown, no extra text
2. Do NOT include code examples in the response - only descriptions
3. Keep examples as text descriptions, not actual code
4. Use \\n for line breaks inside JSON strings; do NOT include actual line breaks inside string values
5. Replace [placeholders] with actual topic-specific paths
6. Ensure proper JSON escaping for quotes and special characters

Your entire response must be parseable by JSON.parse(). Start with { and end with }.
Make the explanation practical and actionable. Return ONLY the JSON object, no additional text.`,
		topic, contextText, topic, topic, topicEncoded,
		topic, topicEncoded, topic, topicEncoded, topic, topicEncoded)
}
