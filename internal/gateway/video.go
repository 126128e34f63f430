package gateway

import (
	"context"
	"errors"
	"time"

	errx "github.com/gamal-store/server/internal/core/error"
	logx "github.com/gamal-store/server/pkg/logger"
	"google.golang.org/genai"
)

// ErrPollBudgetExceeded reports that a video operation stayed pending past
// the configured poll limit.
var ErrPollBudgetExceeded = errors.New("video generation exceeded poll budget")

// AnimateProduct turns a product image into a short cinematic showcase video
// and returns a fetchable download URI. The operation is polled until done,
// bounded by the configured poll limit, and honors ctx cancellation between
// polls. ok is false on failure, timeout, or a missing result.
func (g *Gateway) AnimateProduct(ctx context.Context, image string, orientation Orientation) (string, bool) {
	uri, err := g.animate(ctx, image, orientation)
	if err != nil {
		logx.Error().Err(err).Msg("video generation failed")
		return "", false
	}
	return uri, uri != ""
}

func (g *Gateway) animate(ctx context.Context, image string, orientation Orientation) (string, error) {
	mimeType, data, err := decodeImagePayload(image)
	if err != nil {
		return "", err
	}

	op, err := g.models.GenerateVideos(ctx, g.cfg.VideoModel, videoPrompt, &genai.Image{ImageBytes: data, MIMEType: mimeType}, videoConfig(orientation))
	if err != nil {
		return "", errx.WrapProvider(err)
	}

	for polls := 0; !op.Done; polls++ {
		if polls >= g.cfg.VideoPollLimit {
			return "", ErrPollBudgetExceeded
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.cfg.VideoPollInterval):
		}
		op, err = g.ops.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return "", errx.WrapProvider(err)
		}
		logx.Debug().Int("polls", polls+1).Bool("done", op.Done).Msg("video operation polled")
	}

	uri, ok := videoURI(op, g.cfg.APIKey)
	if !ok {
		logx.Warn().Str("model", g.cfg.VideoModel).Msg("completed video operation carried no download uri")
		return "", nil
	}
	return uri, nil
}
