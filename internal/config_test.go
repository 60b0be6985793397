package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("0.0.0.0:50051", config.Address())
	req.True(filepath.IsAbs(config.UploadRootDir))
	req.Equal("uploads", filepath.Base(config.UploadRootDir))
	req.Equal(8*1024*1024, config.MaxRecvMsgSize)
	req.Equal(10*time.Minute, config.LedgerGCInterval)
	req.Equal(200*time.Millisecond, config.RestartInterval)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	root := t.TempDir()
	t.Setenv("PORT", "6000")
	t.Setenv("UPLOAD_ROOT_DIR", root)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REPORT_INTERVAL", "5s")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(6000, config.Port)
	req.Equal(root, config.UploadRootDir)
	req.Equal("DEBUG", config.LogLevel)
	req.Equal(5*time.Second, config.ReportInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		key, value  string
	}{
		{"Port out of range", "PORT", "70000"},
		{"Unknown log level", "LOG_LEVEL", "TRACE"},
		{"Interval too short", "REPORT_INTERVAL", "1ms"},
		{"Not a duration", "LEDGER_GC_INTERVAL", "often"},
		{"Receive limit below the largest chunk", "MAX_RECV_MSG_SIZE", "1048576"},
		{"Restart interval too short", "RESTART_INTERVAL", "1ms"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
