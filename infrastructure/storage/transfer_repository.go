package storage

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"upload-lab/domain"
	"upload-lab/errors"
	pb "upload-lab/proto/upload"
)

const transferPrefix = "transfer:"

// TransferRepository is the ledger of receive sessions.
// Keys are "transfer:<started_at_nanos>:<id>" so iteration follows start time.
type TransferRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTransferRepository(db *badger.DB, log *slog.Logger) *TransferRepository {
	return &TransferRepository{
		db:  db,
		log: log,
	}
}

func transferKey(record domain.TransferRecord) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", transferPrefix, record.StartedAt.UnixNano(), record.ID))
}

// Save persists a finished session.
func (r TransferRepository) Save(record domain.TransferRecord) error {
	data, err := proto.Marshal(toPbTransferRecord(record))
	if err != nil {
		return fmt.Errorf("failed to marshal transfer %s: %w", record.ID, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(transferKey(record), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", record.ID, err)
	}
	r.log.Debug("Transfer recorded", "id", record.ID, "outcome", record.Outcome.String())
	return nil
}

// List returns up to limit records, most recent first. A limit <= 0 returns everything.
func (r TransferRepository) List(limit int) ([]domain.TransferRecord, error) {
	var records []domain.TransferRecord
	prefix := []byte(transferPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		if limit > 0 {
			opts.PrefetchSize = limit
		}

		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode Seek lands on the greatest key <= the seek key
		seek := append([]byte(transferPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			err := it.Item().Value(func(v []byte) error {
				var rec pb.TransferRecord
				if err := proto.Unmarshal(v, &rec); err != nil {
					return fmt.Errorf("failed to unmarshal transfer: %w", err)
				}
				records = append(records, fromPbTransferRecord(&rec))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during ledger scan: %w", err)
	}

	return records, nil
}

func toPbTransferRecord(r domain.TransferRecord) *pb.TransferRecord {
	return &pb.TransferRecord{
		Id:        r.ID,
		Name:      r.Name,
		Path:      r.Path,
		Bytes:     r.Bytes,
		Chunks:    r.Chunks,
		MimeType:  r.MimeType,
		Outcome:   int32(r.Outcome),
		Fault:     int32(r.Fault),
		Message:   r.Message,
		StartedAt: timestamppb.New(r.StartedAt),
		EndedAt:   timestamppb.New(r.EndedAt),
	}
}

func fromPbTransferRecord(p *pb.TransferRecord) domain.TransferRecord {
	return domain.TransferRecord{
		ID:        p.Id,
		Name:      p.Name,
		Path:      p.Path,
		Bytes:     p.Bytes,
		Chunks:    p.Chunks,
		MimeType:  p.MimeType,
		Outcome:   domain.TransferOutcome(p.Outcome),
		Fault:     errors.Kind(p.Fault),
		Message:   p.Message,
		StartedAt: p.StartedAt.AsTime(),
		EndedAt:   p.EndedAt.AsTime(),
	}
}
