package gateway

import "time"

// Config defines the provider credentials, model selection and video polling
// behaviour of the gateway, sourced from environment variables.
type Config struct {
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	DescriptionModel string `envconfig:"GATEWAY_DESCRIPTION_MODEL" default:"gemini-3-flash-preview"`
	ImageModel       string `envconfig:"GATEWAY_IMAGE_MODEL" default:"gemini-3-pro-image-preview"`
	EditModel        string `envconfig:"GATEWAY_EDIT_MODEL" default:"gemini-2.5-flash-image"`
	VideoModel       string `envconfig:"GATEWAY_VIDEO_MODEL" default:"veo-3.1-fast-generate-preview"`
	ChatModel        string `envconfig:"GATEWAY_CHAT_MODEL" default:"gemini-3-pro-preview"`
	SpeechModel      string `envconfig:"GATEWAY_SPEECH_MODEL" default:"gemini-2.5-flash-preview-tts"`
	SpeechVoice      string `envconfig:"GATEWAY_SPEECH_VOICE" default:"Kore"`

	// Video generation is long-running; the operation handle is polled until
	// done, at most VideoPollLimit times, VideoPollInterval apart.
	VideoPollInterval time.Duration `envconfig:"GATEWAY_VIDEO_POLL_INTERVAL" default:"10s"`
	VideoPollLimit    int           `envconfig:"GATEWAY_VIDEO_POLL_LIMIT" default:"90"`
}
