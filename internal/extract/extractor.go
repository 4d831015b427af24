// Package extract turns a watch screenshot into a best-effort training
// draft by delegating to a generative AI backend. The result is only a
// form pre-fill suggestion and is never persisted directly.
package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/myniu/internal/error_values"
	"github.com/limbo/myniu/pkg/entity"
)

type Extractor interface {
	// ExtractTraining parses a screenshot into session fields. Fields the
	// model couldn't find stay zero. The oracle is unreliable: callers
	// must treat the draft as a suggestion, not data.
	ExtractTraining(ctx context.Context, image []byte) (*entity.TrainingDraft, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const extractPrompt = "Extract training data from this screenshot. Look for duration (minutes), " +
	"calories, average heart rate (HR), maximum heart rate, and training effect " +
	"(usually a decimal like 3.0 or 4.1). If some values are missing, return 0 for them."

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewGeminiClientWithURL points the client at a different endpoint,
// used by tests.
func NewGeminiClientWithURL(apiKey, model, baseURL string) *GeminiClient {
	c := NewGeminiClient(apiKey, model)
	c.baseURL = baseURL
	return c
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (gc *GeminiClient) ExtractTraining(ctx context.Context, image []byte) (*entity.TrainingDraft, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: extractPrompt},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
		},
	}
	payload, err := sonic.ConfigDefault.Marshal(reqBody)
	if err != nil {
		return nil, errors.New("marshalling extract request error: " + err.Error())
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", gc.baseURL, gc.model, gc.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New("building extract request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := gc.client.Do(req)
	if err != nil {
		return nil, errorvalues.ErrExtractUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errorvalues.ErrExtractUnavailable
	}
	var genResp generateResponse
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, errors.New("decoding extract response error: " + err.Error())
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("extractor returned no candidates")
	}
	var draft entity.TrainingDraft
	if err = sonic.ConfigDefault.UnmarshalFromString(genResp.Candidates[0].Content.Parts[0].Text, &draft); err != nil {
		return nil, errors.New("parsing extracted fields error: " + err.Error())
	}
	return &draft, nil
}
