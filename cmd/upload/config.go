package main

import "time"

// Config defines the upload client environment variables.
// CHUNK_SIZE is capped at domain.MaxChunkSize so a chunk always fits the
// server's MAX_RECV_MSG_SIZE.
type Config struct {
	ServerAddress string        `env:"UPLOAD_SERVER_ADDR,default=localhost:50051" validate:"required,hostname_port"`
	ChunkSize     int           `env:"CHUNK_SIZE,default=1048576" validate:"min=1,max=4194304"`
	Parallelism   int           `env:"UPLOAD_PARALLELISM,default=4" validate:"min=1,max=64"`
	Timeout       time.Duration `env:"UPLOAD_TIMEOUT,default=0s" validate:"min=0"`
	LogLevel      string        `env:"LOG_LEVEL,default=WARN" validate:"oneof=DEBUG INFO WARN ERROR"`
	NoColour      bool          `env:"NO_COLOUR,default=false"`
}
