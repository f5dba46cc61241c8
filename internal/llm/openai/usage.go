package openai

import "studykit-backend/internal/shared/telemetry"

func logUsage(model string, promptTokens, completionTokens, totalTokens int) {
	telemetry.Info("llm.usage", map[string]any{
		"provider":          "openai",
		"model":             model,
		"prompt_tokens":     promptTokens,
		"completion_tokens": completionTokens,
		"total_tokens":      totalTokens,
	})
}
