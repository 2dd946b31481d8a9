package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Fetch   FetchConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type FetchConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var defaults = map[string]any{
	"port":                "3000",
	"env":                 "development",
	"gemini_api_key":      "",
	"gemini_api_key_file": "",
	"gemini_model":        "gemini-2.5-flash",
	"upload_path":         "./uploads",
	"max_file_size":       int64(10485760),
	"fetch_timeout":       "15s",
	"log_json":            false,
	"log_debug":           false,
}

// New returns a viper instance with defaults and environment binding applied.
// Callers may bind CLI flags to it before passing it to Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// Load reads .env (when present), an optional config file, and the process
// environment. A missing Gemini API key is an error: the toolkit cannot serve
// any request without it.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if v == nil {
		v = New()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	apiKey, err := LoadSecret(SecretSource{
		Name:  "GEMINI_API_KEY",
		Value: v.GetString("gemini_api_key"),
		File:  v.GetString("gemini_api_key_file"),
	})
	if err != nil {
		return nil, err
	}

	timeout := v.GetDuration("fetch_timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("port"),
			Env:  v.GetString("env"),
		},
		Gemini: GeminiConfig{
			APIKey: apiKey,
			Model:  v.GetString("gemini_model"),
		},
		Storage: StorageConfig{
			UploadPath:  v.GetString("upload_path"),
			MaxFileSize: v.GetInt64("max_file_size"),
		},
		Fetch: FetchConfig{
			Timeout: timeout,
		},
		Log: LogConfig{
			JSON:  v.GetBool("log_json"),
			Debug: v.GetBool("log_debug"),
		},
	}, nil
}
