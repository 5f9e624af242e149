package tagline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-3-flash-preview"
)

// Fixed strings served when the generative model cannot. The tagline feature
// always shows some text, never an error.
const (
	FallbackTagline = "A must-watch for the weekend!"
	ErrorTagline    = "The vibiest movie in Naija right now!"
)

// Service generates short Naija-style movie taglines through the Gemini
// generateContent API.
type Service struct {
	apiKey string
	httpc  *http.Client

	throttleMu  sync.Mutex
	lastRequest time.Time
	minInterval time.Duration

	retryDelay time.Duration
}

func NewService(apiKey string, httpc *http.Client) *Service {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{
		apiKey:      strings.TrimSpace(apiKey),
		httpc:       httpc,
		minInterval: 100 * time.Millisecond,
		retryDelay:  500 * time.Millisecond,
	}
}

func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// Generate asks the model for a tagline for the given movie. The returned
// string is trimmed and may be empty; callers substitute FallbackTagline for
// empty output.
func (s *Service) Generate(ctx context.Context, title, description string) (string, error) {
	if !s.IsConfigured() {
		return "", errors.New("gemini api key not configured")
	}

	prompt := fmt.Sprintf(`You are a savvy Nigerian movie promoter. Generate a short, catchy, and culturally relevant "Naija style" tagline for the movie %q. Description: %q. Keep it under 60 characters and use a bit of Nigerian Pidgin if appropriate. Output ONLY the tagline text.`, title, description)

	// Rate limiting
	s.throttleMu.Lock()
	since := time.Since(s.lastRequest)
	if since < s.minInterval {
		time.Sleep(s.minInterval - since)
	}
	s.lastRequest = time.Now()
	s.throttleMu.Unlock()

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", geminiBaseURL, geminiModel, s.apiKey)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     0.8,
			MaxOutputTokens: 64,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Retry with backoff
	var lastErr error
	backoff := s.retryDelay
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		resp, err := s.httpc.Do(req)
		if err != nil {
			lastErr = err
			log.Printf("[tagline] http error (attempt %d/3): %v", attempt+1, err)
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("gemini request failed: status %d", resp.StatusCode)
			log.Printf("[tagline] rate limited or server error (attempt %d/3): status %d", attempt+1, resp.StatusCode)
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(resp.Body)
			return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
		}

		var geminiResp geminiResponse
		if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
			return "", fmt.Errorf("decode gemini response: %w", err)
		}

		if geminiResp.Error != nil {
			return "", fmt.Errorf("gemini API error: %s", geminiResp.Error.Message)
		}

		if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
			return "", errors.New("gemini returned empty response")
		}

		return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
	}

	return "", fmt.Errorf("gemini request failed after 3 attempts: %w", lastErr)
}
