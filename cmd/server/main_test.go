package main

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestRun_PortInUseReleasesLedger(t *testing.T) {
	req := require.New(t)

	// Given the configured port already taken
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	ledger := filepath.Join(t.TempDir(), "ledger")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("UPLOAD_ROOT_DIR", t.TempDir())
	t.Setenv("BADGER_FILEPATH", ledger)
	t.Setenv("LEDGER_GC_INTERVAL", "1s")

	type result struct {
		code int
		err  error
	}
	done := make(chan result, 1)
	go func() {
		code, err := run()
		done <- result{code, err}
	}()

	var got result
	select {
	case got = <-done:
	case <-time.After(5 * time.Second):
		req.FailNow("run should return when the port is in use")
	}
	req.Equal(exitRuntime, got.code)
	req.ErrorContains(got.err, "failed to listen")

	// Then the ledger was closed and can be opened again
	db, err := badger.Open(badger.DefaultOptions(ledger).WithLogger(nil))
	req.NoError(err)
	req.NoError(db.Close())
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("PORT", "70000")
	code, err := run()
	require.Error(t, err)
	require.Equal(t, exitConfig, code)
}
