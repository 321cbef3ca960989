package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bowerhall/voxtutor/internal/logger"
)

// whisper talks to an OpenAI Whisper-compatible /audio/transcriptions
// endpoint via multipart upload.
type whisper struct {
	apiKey      string
	baseURL     string
	model       string
	language    string
	temperature float64
	httpClient  *http.Client
}

func NewTranscriber(cfg TranscriberConfig) Transcriber {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := cfg.Model
	if model == "" {
		model = "whisper-1"
	}

	return &whisper{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		model:       model,
		language:    cfg.Language,
		temperature: cfg.Temperature,
		httpClient:  http.DefaultClient,
	}
}

func (w *whisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audioData, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(audioData); err != nil {
		return "", fmt.Errorf("writing audio data: %w", err)
	}

	if err := mw.WriteField("model", w.model); err != nil {
		return "", fmt.Errorf("writing model field: %w", err)
	}

	if w.language != "" {
		_ = mw.WriteField("language", w.language)
	}

	if w.temperature > 0 {
		_ = mw.WriteField("temperature", strconv.FormatFloat(w.temperature, 'f', -1, 64))
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+w.apiKey)

	start := time.Now()
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("api error: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	// Response is either plain text or JSON with a "text" field.
	text := string(respBody)
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		var j struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(respBody, &j); err == nil && j.Text != "" {
			text = j.Text
		}
	}

	logger.Debug("transcription done",
		"duration_ms", time.Since(start).Milliseconds(),
		"transcript_len", len(text),
	)

	return strings.TrimSpace(text), nil
}
