package relay

import (
	"log/slog"

	"upload-lab/contract"
	"upload-lab/errors"
	pb "upload-lab/proto/upload"
)

// Source is the part of source.MappedFile the relay needs.
type Source interface {
	Path() string
	Name() string
	Read(maxChunkSize int, onChunk func(chunk []byte) error) error
}

type Stats struct {
	Chunks int
	Bytes  int64
}

// Relay pushes the chunks of one source onto one stream, in order, with a
// single chunk in flight.
type Relay struct {
	source Source
	sender contract.ChunkSender
	log    *slog.Logger
}

func New(source Source, sender contract.ChunkSender, log *slog.Logger) *Relay {
	return &Relay{source: source, sender: sender, log: log}
}

// Pump reads the whole source and sends each chunk tagged with the source's
// base name. The first rejected Send ends the pump with a TransportAborted
// error; nothing is retried and the remaining chunks are never read.
func (r *Relay) Pump(maxChunkSize int) (Stats, error) {
	var stats Stats
	name := r.source.Name()

	err := r.source.Read(maxChunkSize, func(chunk []byte) error {
		// Send serializes the message before returning, so the borrowed
		// slice is not referenced once the call completes.
		if err := r.sender.Send(&pb.FileContent{Name: name, Content: chunk}); err != nil {
			r.log.Debug("Chunk rejected by peer", "file", name, "chunk", stats.Chunks, "error", err)
			return errors.New(errors.KindTransportAborted, "send", r.source.Path(), err)
		}
		stats.Chunks++
		stats.Bytes += int64(len(chunk))
		return nil
	})
	return stats, err
}
