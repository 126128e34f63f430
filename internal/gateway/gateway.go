// Package gateway mediates every call to the generative AI provider: it
// builds capability-specific requests, dispatches them (polling for the
// long-running video capability), normalizes the heterogeneous response
// shapes into one result type per capability, and guarantees that a provider
// or transport failure never escapes — callers always receive either a real
// result or the capability's documented fallback.
package gateway

import (
	"context"
	"fmt"

	errx "github.com/gamal-store/server/internal/core/error"
	logx "github.com/gamal-store/server/pkg/logger"
	"google.golang.org/genai"
)

const (
	// descriptionFallback is returned when the provider call fails outright.
	descriptionFallback = "تشكيلة حصرية من متجر جمال للرجل العصري."
	// descriptionDefault is returned when the provider replies without text.
	descriptionDefault = "وصف رائع لمنتج مميز من تشكيلة جمال الفاخرة."
	// chatFallbackText is returned when the chat capability fails.
	chatFallbackText = "عذراً، أواجه مشكلة في معالجة طلبك حالياً."
)

// modelCaller is the slice of the genai Models API the gateway dispatches to.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateVideos(ctx context.Context, model string, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
}

// videoPoller re-checks the status of a pending video generation operation.
type videoPoller interface {
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation, config *genai.GetOperationConfig) (*genai.GenerateVideosOperation, error)
}

// Gateway is the single integration point with the generative AI provider.
type Gateway struct {
	cfg    Config
	models modelCaller
	ops    videoPoller
}

// New creates a Gateway backed by a Gemini API client.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("failed to create gemini client")
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gateway{cfg: cfg, models: client.Models, ops: client.Operations}, nil
}

// GenerateDescription produces a short Arabic marketing description for a
// product. It never fails: provider errors collapse to a fixed sentence.
func (g *Gateway) GenerateDescription(ctx context.Context, productName, category string) string {
	text, err := g.describe(ctx, productName, category)
	if err != nil {
		logx.Error().Err(err).Str("product", productName).Msg("description generation failed")
		return descriptionFallback
	}
	return text
}

func (g *Gateway) describe(ctx context.Context, productName, category string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.cfg.DescriptionModel, genai.Text(descriptionPrompt(productName, category)), nil)
	if err != nil {
		return "", errx.WrapProvider(err)
	}
	if text := resp.Text(); text != "" {
		return text, nil
	}
	return descriptionDefault, nil
}

// GenerateProductImage renders a studio-style product photo and returns it as
// a data URI. ok is false when the provider failed or returned no image.
func (g *Gateway) GenerateProductImage(ctx context.Context, prompt string, size ImageSize) (string, bool) {
	uri, err := g.generateImage(ctx, prompt, size)
	if err != nil {
		logx.Error().Err(err).Msg("image generation failed")
		return "", false
	}
	return uri, uri != ""
}

func (g *Gateway) generateImage(ctx context.Context, prompt string, size ImageSize) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(imagePrompt(prompt)), imageConfig(size))
	if err != nil {
		return "", errx.WrapProvider(err)
	}
	uri, ok := inlineImageURI(resp)
	if !ok {
		logx.Warn().Str("model", g.cfg.ImageModel).Msg("image response carried no inline data")
		return "", nil
	}
	return uri, nil
}

// EditProductImage applies a natural-language edit to an existing image and
// returns the edited image as a data URI.
func (g *Gateway) EditProductImage(ctx context.Context, image, instruction string) (string, bool) {
	uri, err := g.editImage(ctx, image, instruction)
	if err != nil {
		logx.Error().Err(err).Msg("image editing failed")
		return "", false
	}
	return uri, uri != ""
}

func (g *Gateway) editImage(ctx context.Context, image, instruction string) (string, error) {
	mimeType, data, err := decodeImagePayload(image)
	if err != nil {
		return "", err
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.EditModel, editContents(mimeType, data, instruction), nil)
	if err != nil {
		return "", errx.WrapProvider(err)
	}
	uri, ok := inlineImageURI(resp)
	if !ok {
		logx.Warn().Str("model", g.cfg.EditModel).Msg("edit response carried no inline data")
		return "", nil
	}
	return uri, nil
}

// Chat answers a user query with the store assistant persona, grounding the
// answer through the provider's search and maps tools. The returned Reply
// always carries a non-nil source list; failures collapse to an apologetic
// message with no sources.
func (g *Gateway) Chat(ctx context.Context, query string, history []Turn) Reply {
	reply, err := g.chat(ctx, query, history)
	if err != nil {
		logx.Error().Err(err).Msg("chat completion failed")
		return Reply{Text: chatFallbackText, Sources: []Source{}}
	}
	return reply
}

func (g *Gateway) chat(ctx context.Context, query string, history []Turn) (Reply, error) {
	resp, err := g.models.GenerateContent(ctx, g.cfg.ChatModel, chatContents(query, history), chatConfig())
	if err != nil {
		return Reply{}, errx.WrapProvider(err)
	}
	return replyFrom(resp), nil
}

// Speak synthesizes the text as warm Arabic speech and returns the raw audio
// bytes, or nil when synthesis was not possible. Playback is the caller's
// responsibility.
func (g *Gateway) Speak(ctx context.Context, text string) []byte {
	audio, err := g.speak(ctx, text)
	if err != nil {
		logx.Error().Err(err).Msg("speech generation failed")
		return nil
	}
	return audio
}

func (g *Gateway) speak(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.models.GenerateContent(ctx, g.cfg.SpeechModel, speechContents(text), speechConfig(g.cfg.SpeechVoice))
	if err != nil {
		return nil, errx.WrapProvider(err)
	}
	return inlineAudio(resp), nil
}
