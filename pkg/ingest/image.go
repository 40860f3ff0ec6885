package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const imageDescriptionPrompt = `Describe this image in detail. Transcribe any visible text verbatim,
then describe diagrams, charts, and other visual content so the description can stand in for the
image in a text-only search index.`

// ImageDescriber turns an uploaded image into indexable text by asking a
// multimodal model to transcribe and describe it.
type ImageDescriber struct {
	ApiKey string
	Model  string
	Client *http.Client
}

func NewImageDescriber(apiKey, model string) *ImageDescriber {
	return &ImageDescriber{
		ApiKey: apiKey,
		Model:  model,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiVisionRequest struct {
	Contents []geminiVisionContent `json:"contents"`
}

type geminiVisionContent struct {
	Parts []geminiVisionPart `json:"parts"`
}

type geminiVisionPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiVisionResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (d *ImageDescriber) Describe(ctx context.Context, ext string, data []byte) (string, error) {
	payload := geminiVisionRequest{
		Contents: []geminiVisionContent{{
			Parts: []geminiVisionPart{
				{Text: imageDescriptionPrompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeTypeForExtension(ext),
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
			},
		}},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1/models/%s:generateContent",
		d.Model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", d.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := d.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini vision error, code %d, body %s", res.StatusCode, string(resBody))
	}

	var visionRes geminiVisionResponse
	if err := json.Unmarshal(resBody, &visionRes); err != nil {
		return "", err
	}
	if len(visionRes.Candidates) == 0 || len(visionRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini vision returned no candidates")
	}

	return strings.TrimSpace(visionRes.Candidates[0].Content.Parts[0].Text), nil
}

func mimeTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}
