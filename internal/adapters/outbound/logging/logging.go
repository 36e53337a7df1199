package logging

import (
	"go.uber.org/zap"
)

// New builds the pipeline's logger. Production config logs the gate's
// warn-level summary lines and nothing quieter; debug switches to the
// development config for step-by-step pipeline tracing.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
