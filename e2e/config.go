package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// UPLOAD_SERVER_ADDR targets a running server; empty starts one in process
	UploadServerAddr string `envconfig:"UPLOAD_SERVER_ADDR"`
	// UPLOAD_ROOT_DIR is where that server writes, used to check received files
	UploadRootDir string `envconfig:"UPLOAD_ROOT_DIR"`
	ChunkSize     int    `envconfig:"E2E_CHUNK_SIZE" default:"1048576"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
