package storage

import (
	"fmt"

	"github.com/mama165/sdk-go/database"
	"google.golang.org/protobuf/proto"

	pb "upload-lab/proto/upload"
)

// TransferMapper renders a ledger entry for the badger debug inspector.
func TransferMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var p pb.TransferRecord
	if err := proto.Unmarshal(val, &p); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	record := fromPbTransferRecord(&p)
	row.Type = record.Outcome.String()
	row.Detail = fmt.Sprintf("%s (%d bytes, %d chunks, %s)", record.Path, record.Bytes, record.Chunks, record.MimeType)
	if record.Message != "" {
		row.Scores = record.Fault.String() + ": " + record.Message
	}
	return row
}
