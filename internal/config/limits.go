package config

const (
	// MaxNameLength is the maximum length for names of user-created
	// resources (projects, agents, websites, chat titles). Limited to
	// 255 to fit in PostgreSQL VARCHAR(255).
	MaxNameLength = 255

	// MaxPromptLength is the maximum length for generation prompts
	// (images, audio, websites, presentations). Upstream providers
	// reject or truncate anything longer.
	MaxPromptLength = 4000

	// MaxMessageLength is the maximum length for a single chat or CRM
	// message body.
	MaxMessageLength = 32000

	// MaxLogMessageLength is the maximum length for an ingested log line.
	MaxLogMessageLength = 8000

	// MaxSearchResults caps how many web search results a single query
	// may request.
	MaxSearchResults = 20
)
