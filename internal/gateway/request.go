package gateway

import (
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ImageSize is the resolution tier requested for image generation.
type ImageSize string

const (
	Size1K ImageSize = "1K"
	Size2K ImageSize = "2K"
	Size4K ImageSize = "4K"
)

// Orientation is the aspect ratio requested for video generation.
type Orientation string

const (
	Landscape Orientation = "16:9"
	Portrait  Orientation = "9:16"
)

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one prior exchange in a chat conversation.
type Turn struct {
	Role Role
	Text string
}

const (
	descriptionPromptTemplate = `اكتب وصفاً تسويقياً جذاباً ومختصراً باللغة العربية لمنتج ملابس رجالي اسمه "%s" وينتمي لفئة "%s". اجعله يبدو فاخراً ومناسباً لمتجر اسم "GAMAL".`

	imagePromptTemplate = "High-end professional studio photography of men's fashion: %s. Minimalist background, cinematic lighting, 8k resolution, luxury aesthetic."
	imageAspectRatio    = "3:4"

	editPromptTemplate = "Edit this men's fashion photo: %s. Maintain the item details but apply the requested changes."

	videoPrompt     = "A cinematic slow-motion fashion showcase of this item. Smooth camera movement, elegant atmosphere."
	videoResolution = "720p"

	chatSystemInstruction = "You are the GAMAL Fashion AI Assistant. Help users with styling, product info, and finding stores. Use search for current trends and maps for locations. Respond in Arabic with a helpful and luxury tone."
	chatThinkingBudget    = int32(32768)

	speechPromptPrefix = "Say warmly in Arabic: "
)

func descriptionPrompt(productName, category string) string {
	return fmt.Sprintf(descriptionPromptTemplate, productName, category)
}

func imagePrompt(prompt string) string {
	return fmt.Sprintf(imagePromptTemplate, prompt)
}

func imageConfig(size ImageSize) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: imageAspectRatio,
			ImageSize:   string(size),
		},
	}
}

func editContents(mimeType string, image []byte, instruction string) []*genai.Content {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		genai.NewPartFromText(fmt.Sprintf(editPromptTemplate, instruction)),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func videoConfig(orientation Orientation) *genai.GenerateVideosConfig {
	return &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     videoResolution,
		AspectRatio:    string(orientation),
	}
}

func chatContents(query string, history []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	return append(contents, genai.NewContentFromText(query, genai.RoleUser))
}

func chatConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(chatThinkingBudget),
		},
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
			{GoogleMaps: &genai.GoogleMaps{}},
		},
	}
}

func speechContents(text string) []*genai.Content {
	return genai.Text(speechPromptPrefix + text)
}

func speechConfig(voice string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}
}

// decodeImagePayload splits a data URI into its MIME type and raw bytes. A
// bare base64 string (no data: header) is accepted and treated as PNG.
func decodeImagePayload(s string) (string, []byte, error) {
	mimeType := "image/png"
	payload := s
	if strings.HasPrefix(s, "data:") {
		header, rest, ok := strings.Cut(s, ",")
		if !ok {
			return "", nil, fmt.Errorf("malformed data uri")
		}
		payload = rest
		if m, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";"); m != "" {
			mimeType = m
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	return mimeType, data, nil
}
