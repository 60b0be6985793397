package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"upload-lab/domain"
	"upload-lab/errors"
)

func TestDescribe(t *testing.T) {
	req := require.New(t)

	ok := describe(outcome{report: domain.UploadReport{Path: "a.bin", Bytes: 3, Chunks: 1, Duration: time.Second}}, false)
	req.Equal("OK    a.bin  3 bytes in 1 chunks (1s)", ok)

	failed := describe(outcome{
		report: domain.UploadReport{
			Path: "b.bin",
			Acks: []domain.StatusMessage{{Code: domain.StatusSpaceExhausted, Message: "no space left on device"}},
		},
		err: errors.New(errors.KindSpaceExhausted, "upload", "b.bin", fmt.Errorf("disk full")),
	}, false)
	req.Contains(failed, "FAIL  b.bin  space_exhausted")
	req.Contains(failed, `[receiver: SPACE_EXHAUSTED "no space left on device"]`)
}

func TestRun_NoArguments(t *testing.T) {
	code, err := run(nil)
	require.Error(t, err)
	require.Equal(t, exitConfig, code)
}

func TestRun_ChunkSizeAboveServerLimit(t *testing.T) {
	t.Setenv("CHUNK_SIZE", "8388608")
	code, err := run([]string{"a.bin"})
	require.ErrorContains(t, err, "invalid config")
	require.Equal(t, exitConfig, code)
}
