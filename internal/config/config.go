package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	CatalogURL      string        // 商品カタログの取得先URL
	PostalLookupURL string        // 郵便番号検索APIのURL
	FetchTimeout    time.Duration // 外部HTTPのタイムアウト

	GoEnv string // dev/prod
}

const defaultPostalLookupURL = "https://zipcloud.ibsnet.co.jp/api/search"

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		CatalogURL:      os.Getenv("CATALOG_URL"),
		PostalLookupURL: getEnv("POSTAL_LOOKUP_URL", defaultPostalLookupURL),
		GoEnv:           getEnv("GO_ENV", "dev"),
	}

	timeoutSec, err := getEnvInt("FETCH_TIMEOUT_SECONDS", 10)
	if err != nil {
		return Config{}, err
	}
	cfg.FetchTimeout = time.Duration(timeoutSec) * time.Second

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.CatalogURL == "" {
		return Config{}, fmt.Errorf("CATALOG_URL is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
