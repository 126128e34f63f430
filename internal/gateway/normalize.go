package gateway

import (
	"encoding/base64"
	"net/url"
	"strings"

	"google.golang.org/genai"
)

// Source is a grounding citation returned alongside a chat answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Reply is a normalized chat result. Sources is never nil; it is empty when
// the provider used no retrieval tools.
type Reply struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// sourceFallbackTitle labels citations whose grounding chunk carries no title.
const sourceFallbackTitle = "زيارة الرابط"

func contentParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

// inlineImageURI re-encodes the first inline binary part as a data URI.
func inlineImageURI(resp *genai.GenerateContentResponse) (string, bool) {
	for _, part := range contentParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), true
		}
	}
	return "", false
}

// inlineAudio extracts the raw audio bytes of the first inline part.
func inlineAudio(resp *genai.GenerateContentResponse) []byte {
	for _, part := range contentParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}

func replyFrom(resp *genai.GenerateContentResponse) Reply {
	reply := Reply{Text: resp.Text(), Sources: []Source{}}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return reply
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		var src Source
		switch {
		case chunk.Web != nil:
			src = Source{URI: chunk.Web.URI, Title: chunk.Web.Title}
		case chunk.Maps != nil:
			src = Source{URI: chunk.Maps.URI, Title: chunk.Maps.Title}
		default:
			continue
		}
		if src.Title == "" {
			src.Title = sourceFallbackTitle
		}
		reply.Sources = append(reply.Sources, src)
	}
	return reply
}

// videoURI extracts the download link of the first generated video and
// appends the API key so the link is fetchable as-is.
func videoURI(op *genai.GenerateVideosOperation, apiKey string) (string, bool) {
	if op == nil || op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return "", false
	}
	video := op.Response.GeneratedVideos[0].Video
	if video == nil || video.URI == "" {
		return "", false
	}
	sep := "?"
	if strings.Contains(video.URI, "?") {
		sep = "&"
	}
	return video.URI + sep + "key=" + url.QueryEscape(apiKey), true
}
