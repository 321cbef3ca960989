package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func Load() (*Config, error) {
	userIDs, err := parseUserIDs(os.Getenv("ALLOWED_USER_IDS"))
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("ALLOWED_USER_IDS not set")
	}

	transcription, err := loadTranscriptionConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AllowedUserIDs: userIDs,
		LLM:            loadLLMConfig(),
		Transcription:  transcription,
		Media:          loadMediaConfig(),
		Storage:        loadStorageConfig(),
		Bots:           loadMultiBotConfig(),
	}

	if path := os.Getenv("VOXTUTOR_CONFIG"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Resolve the key last so a provider switched by the config file gets
	// its own key.
	cfg.LLM.APIKey, err = getAPIKey(cfg.LLM.Provider)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseUserIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q in ALLOWED_USER_IDS", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func loadLLMConfig() LLMConfig {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	return LLMConfig{
		Provider: provider,
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}
}

func loadTranscriptionConfig() (TranscriptionConfig, error) {
	// Transcription always goes to a Whisper-compatible endpoint, regardless
	// of the chat provider.
	apiKey := os.Getenv("TRANSCRIPTION_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return TranscriptionConfig{}, fmt.Errorf("OPENAI_API_KEY not set (required for transcription)")
	}

	language := os.Getenv("TRANSCRIPTION_LANGUAGE")
	if language == "" {
		language = "en"
	}

	temperature := 0.2
	if t, err := strconv.ParseFloat(os.Getenv("TRANSCRIPTION_TEMPERATURE"), 64); err == nil && t >= 0 && t <= 1 {
		temperature = t
	}

	return TranscriptionConfig{
		APIKey:      apiKey,
		BaseURL:     os.Getenv("TRANSCRIPTION_BASE_URL"),
		Model:       os.Getenv("TRANSCRIPTION_MODEL"),
		Language:    language,
		Temperature: temperature,
	}, nil
}

func loadMediaConfig() MediaConfig {
	dir := os.Getenv("MEDIA_DIR")
	if dir == "" {
		dir = "tmp-media"
	}

	quality := 96
	if q, err := strconv.Atoi(os.Getenv("MEDIA_QUALITY")); err == nil && q > 0 {
		quality = q
	}

	maxAge := time.Hour
	if d, err := time.ParseDuration(os.Getenv("MEDIA_MAX_AGE")); err == nil && d > 0 {
		maxAge = d
	}

	return MediaConfig{
		Dir:     dir,
		Format:  "mp3",
		Quality: quality,
		MaxAge:  maxAge,
	}
}

func loadStorageConfig() StorageConfig {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "minio:9000"
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")

	return StorageConfig{
		Enabled:   accessKey != "" && secretKey != "",
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		Bucket:    os.Getenv("MINIO_BUCKET"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
}

func loadMultiBotConfig() MultiBot {
	telegramToken := os.Getenv("TELEGRAM_TOKEN")
	discordToken := os.Getenv("DISCORD_TOKEN")

	return MultiBot{
		Telegram: BotInstance{
			Enabled: telegramToken != "",
			Token:   telegramToken,
		},
		Discord: BotInstance{
			Enabled: discordToken != "",
			Token:   discordToken,
		},
	}
}

func getAPIKey(provider string) (string, error) {
	envKey := os.Getenv("LLM_API_KEY")
	if envKey != "" {
		return envKey, nil
	}

	switch provider {
	case "claude":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
		return key, nil
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return "", fmt.Errorf("OPENAI_API_KEY not set")
		}
		return key, nil
	default:
		// convention: {PROVIDER}_API_KEY (e.g., MISTRAL_API_KEY, GROQ_API_KEY)
		key := os.Getenv(strings.ToUpper(provider) + "_API_KEY")
		if key == "" {
			return "", fmt.Errorf("%s_API_KEY not set", strings.ToUpper(provider))
		}
		return key, nil
	}
}
