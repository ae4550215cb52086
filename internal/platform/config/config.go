// Package config loads process-level configuration from the environment.
package config

import (
	"os"
	"strings"
)

// Config holds process configuration: listen port and CORS origin allow-list.
// Provider-specific settings live next to each client (see
// platform/externalapi/*/config.go).
type Config struct {
	Port           string   // HTTP listen port
	AllowedOrigins []string // CORS origin allow-list
}

// defaultOrigins はローカル開発用のフロントエンドオリジンです。
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Load は環境変数から設定を読み込みます。未設定の項目にはデフォルト値を使用します。
// ALLOWED_ORIGINS はカンマ区切りで追加のオリジンを指定します。
func Load() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		AllowedOrigins: append([]string{}, defaultOrigins...),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
