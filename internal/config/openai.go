package config

import "os"

// OpenAIConfig holds the settings for the evaluation and speech clients.
type OpenAIConfig struct {
	APIKey  string `json:"-"` // Never serialize
	BaseURL string `json:"baseUrl"`

	// ChatModel scores batched interview transcripts.
	ChatModel string `json:"chatModel"`
	// TranscribeModel turns candidate audio into text.
	TranscribeModel string `json:"transcribeModel"`
	// SpeechModel and Voice read questions back to the candidate.
	SpeechModel string `json:"speechModel"`
	Voice       string `json:"voice"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultOpenAIConfig returns the OpenAI configuration from the environment.
func DefaultOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:          os.Getenv("OPENAI_API_KEY"),
		BaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
		TranscribeModel: getEnv("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
		SpeechModel:     getEnv("OPENAI_SPEECH_MODEL", "tts-1"),
		Voice:           getEnv("OPENAI_VOICE", "alloy"),
		TimeoutMS:       60000,
	}
}

// IsEnabled returns true if the OpenAI API is configured.
func (c *OpenAIConfig) IsEnabled() bool {
	return c.APIKey != ""
}
