package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voice.mp3")
	if err := os.WriteFile(path, []byte("mp3-bytes"), 0o644); err != nil {
		t.Fatalf("writing audio: %v", err)
	}
	return path
}

func TestWhisperTranscribe(t *testing.T) {
	var gotModel, gotLanguage, gotTemperature, gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}

		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		gotTemperature = r.FormValue("temperature")

		if files := r.MultipartForm.File["file"]; len(files) == 1 {
			gotFilename = files[0].Filename
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello from whisper"}`))
	}))
	defer srv.Close()

	tr := NewTranscriber(TranscriberConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Language:    "en",
		Temperature: 0.2,
	})

	text, err := tr.Transcribe(context.Background(), writeTestAudio(t))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}

	if text != "hello from whisper" {
		t.Errorf("unexpected transcript %q", text)
	}
	if gotModel != "whisper-1" {
		t.Errorf("expected default model whisper-1, got %q", gotModel)
	}
	if gotLanguage != "en" {
		t.Errorf("expected language hint, got %q", gotLanguage)
	}
	if gotTemperature != "0.2" {
		t.Errorf("expected temperature 0.2, got %q", gotTemperature)
	}
	if gotFilename != "voice.mp3" {
		t.Errorf("expected uploaded filename, got %q", gotFilename)
	}
}

func TestWhisperTranscribeSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid file format"}}`))
	}))
	defer srv.Close()

	tr := NewTranscriber(TranscriberConfig{APIKey: "key", BaseURL: srv.URL})

	_, err := tr.Transcribe(context.Background(), writeTestAudio(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid file format") {
		t.Errorf("error should carry the upstream message, got %q", err)
	}
}

func TestWhisperTranscribeMissingFile(t *testing.T) {
	tr := NewTranscriber(TranscriberConfig{APIKey: "key", BaseURL: "http://unused"})

	if _, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "gone.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
