package kit

import "go.uber.org/zap"

// NewLogger builds the shared logger. Development gets the console
// encoder, everything else the JSON production config. The service name
// rides along on every entry.
func NewLogger(service, env string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]any{"service": service}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
