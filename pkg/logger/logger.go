package logger

import "go.uber.org/zap"

// New はGO_ENVに応じたzapロガーを作る。
func New(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
