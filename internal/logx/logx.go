package logx

import (
	"go.uber.org/zap"
)

// Setup installs the global zap logger. Services and handlers log through
// zap.S() / zap.L() after this has been called.
func Setup(env string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
