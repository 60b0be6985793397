package internal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config is the upload server configuration, read from the environment.
type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0" validate:"required"`
	Port              int           `env:"PORT,default=50051" validate:"min=1,max=65535"`
	UploadRootDir     string        `env:"UPLOAD_ROOT_DIR,default=uploads" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,default=data/ledger" validate:"required"`
	MaxRecvMsgSize    int           `env:"MAX_RECV_MSG_SIZE,default=8388608" validate:"min=4198400"`
	LedgerGCInterval  time.Duration `env:"LEDGER_GC_INTERVAL,default=10m" validate:"min=1s"`
	ReportInterval    time.Duration `env:"REPORT_INTERVAL,default=30s" validate:"min=1s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"min=10ms"`
	DebugInspectPort  int           `env:"DEBUG_INSPECT_PORT,default=8081" validate:"min=1,max=65535"`
	DebugInspectRoute string        `env:"DEBUG_INSPECT_ROUTE,default=/inspect" validate:"startswith=/"`
}

// LoadConfig decodes and validates the environment. The upload root is
// resolved against the working directory.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	root, err := filepath.Abs(config.UploadRootDir)
	if err != nil {
		return Config{}, fmt.Errorf("invalid upload root %q: %w", config.UploadRootDir, err)
	}
	config.UploadRootDir = root
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
