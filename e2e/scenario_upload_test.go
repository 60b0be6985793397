package e2e

import (
	"bytes"
	"context"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"upload-lab/domain"
	"upload-lab/infrastructure/grpc/client"
)

type testUploadSuite struct {
	BaseGrpcSuite
}

func TestUploadSuite(t *testing.T) {
	suite.Run(t, &testUploadSuite{})
}

func (s *testUploadSuite) localFile(name string, content []byte) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(path, content, 0o644))
	return path
}

func (s *testUploadSuite) TestThreeMegabyteUpload() {
	name := uuid.NewString() + ".bin"
	content := make([]byte, 3*domain.MB)
	_, err := rand.Read(content)
	s.Require().NoError(err)
	path := s.localFile(name, content)

	s.Run("Step 1: Upload in 1 MiB chunks", func() {
		s.WithUploader("Upload 3 MiB", domain.DefaultChunkSize, func(ctx context.Context, uploader *client.Uploader) {
			report, err := uploader.Upload(ctx, path)
			s.Require().NoError(err)
			s.Require().Equal(3, report.Chunks)
			s.Require().Len(report.Acks, 3)
			for _, ack := range report.Acks {
				s.Require().True(ack.OK())
				s.Require().Equal("Uploaded 1048576 bytes.", ack.Message)
			}
		})
	})

	s.Run("Step 2: Received file matches byte for byte", func() {
		got, err := os.ReadFile(filepath.Join(s.Config.UploadRootDir, name))
		s.Require().NoError(err)
		s.Require().True(bytes.Equal(content, got))
	})
}

func (s *testUploadSuite) TestEmptyFileUpload() {
	name := uuid.NewString() + ".empty"
	path := s.localFile(name, nil)

	s.WithUploader("Upload empty file", s.Config.ChunkSize, func(ctx context.Context, uploader *client.Uploader) {
		report, err := uploader.Upload(ctx, path)
		s.Require().NoError(err)
		s.Require().Equal(1, report.Chunks)
		s.Require().Equal("Uploaded 0 bytes.", report.Acks[0].Message)
	})

	info, err := os.Stat(filepath.Join(s.Config.UploadRootDir, name))
	s.Require().NoError(err)
	s.Require().Zero(info.Size())
}

func (s *testUploadSuite) TestMissingSourceSendsNothing() {
	name := uuid.NewString() + ".missing"

	s.WithUploader("Upload missing file", s.Config.ChunkSize, func(ctx context.Context, uploader *client.Uploader) {
		report, err := uploader.Upload(ctx, filepath.Join(s.T().TempDir(), name))
		s.Require().Error(err)
		s.Require().Zero(report.Chunks)
	})

	_, err := os.Stat(filepath.Join(s.Config.UploadRootDir, name))
	s.Require().True(os.IsNotExist(err))
}

func (s *testUploadSuite) TestLedgerRecordsSessions() {
	if s.Ledger == nil {
		s.T().Skip("ledger is only reachable for the in-process server")
	}
	path := s.localFile(uuid.NewString()+".txt", []byte("ledger"))

	s.WithUploader("Upload and check ledger", s.Config.ChunkSize, func(ctx context.Context, uploader *client.Uploader) {
		_, err := uploader.Upload(ctx, path)
		s.Require().NoError(err)
	})

	records, err := s.Ledger.List(1)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Require().Equal(filepath.Base(path), records[0].Name)
	s.Require().Equal(domain.OutcomeCompleted, records[0].Outcome)
	s.Require().Equal("text/plain; charset=utf-8", records[0].MimeType)
}
