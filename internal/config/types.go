package config

import "time"

type Config struct {
	AllowedUserIDs []int64
	LLM            LLMConfig
	Transcription  TranscriptionConfig
	Media          MediaConfig
	Storage        StorageConfig
	Bots           MultiBot
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

type TranscriptionConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Language    string
	Temperature float64
}

type MediaConfig struct {
	Dir     string
	Format  string
	Quality int
	MaxAge  time.Duration
}

type StorageConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type MultiBot struct {
	Telegram BotInstance
	Discord  BotInstance
}

type BotInstance struct {
	Enabled bool
	Token   string
}
