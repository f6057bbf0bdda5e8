package tui

import (
	"fmt"
	"strings"
)

// defaultContextLimit applies to models missing from contextLimits
const defaultContextLimit = 8000

// contextLimits is matched in order against the lowercased model name, so
// longer names come before their prefixes.
var contextLimits = []struct {
	match string
	limit int
}{
	{"claude", 200000},
	{"gpt-4o", 128000},
	{"gpt-4-turbo", 128000},
	{"gpt-4-32k", 32000},
	{"gpt-4", 8000},
	{"llama-3", 128000},
	{"llama3", 128000},
	{"llama", 8000},
	{"mixtral", 32000},
	{"gemini", 1000000},
}

// estimateTokens returns approximate token count (~4 chars per token)
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// getContextLimit returns the context window size for a model
func getContextLimit(model string) int {
	model = strings.ToLower(model)
	for _, c := range contextLimits {
		if strings.Contains(model, c.match) {
			return c.limit
		}
	}
	return defaultContextLimit
}

// tokenGauge renders "~123 / 128k tokens" for the prompt text
func tokenGauge(text, model string) string {
	return fmt.Sprintf("~%d / %dk tokens", estimateTokens(text), getContextLimit(model)/1000)
}
