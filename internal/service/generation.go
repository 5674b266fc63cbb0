package service

import "context"

// PromptCompleter runs a single-shot generation: one system
// instruction, one prompt, one reply. Satisfied by the OpenAI and
// Gemini upstream clients.
type PromptCompleter interface {
	CompletePrompt(ctx context.Context, model, system, prompt string) (string, error)
}
