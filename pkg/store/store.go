// Package store implements the persistence collaborator: it moves one
// opaque snapshot blob - the serialized state of all open projects and
// their diagrams - in and out of a storage backend.
//
// The core never learns the storage medium; it sees only the [Store]
// interface. Backends: [FileStore] for local use, [RedisStore] and
// [MongoStore] for hosted deployments, [NullStore] to disable persistence.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

// SnapshotVersion is bumped when the blob layout changes incompatibly.
const SnapshotVersion = 1

// Project groups the diagrams of one workspace.
type Project struct {
	ID       string                     `json:"id" bson:"id"`
	Name     string                     `json:"name" bson:"name"`
	Diagrams map[string]diagram.Diagram `json:"diagrams" bson:"diagrams"`
}

// Snapshot is the full persisted state: every open project with all of its
// diagrams. Viewports are deliberately absent; they are view-only state.
type Snapshot struct {
	Version  int       `json:"version" bson:"version"`
	SavedAt  time.Time `json:"saved_at" bson:"saved_at"`
	Projects []Project `json:"projects" bson:"projects"`
}

// EncodeSnapshot serializes a snapshot to its opaque blob form.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	s.Version = SnapshotVersion
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "encoding snapshot")
	}
	return data, nil
}

// DecodeSnapshot parses a blob previously produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeParseFailed, err, "decoding snapshot")
	}
	return s, nil
}

// Store persists one snapshot blob. Implementations must be safe for use
// from a single goroutine; concurrent writers need external coordination.
type Store interface {
	// Load returns the stored blob. ok is false when nothing has been
	// saved yet; that is not an error.
	Load(ctx context.Context) (data []byte, ok bool, err error)

	// Save replaces the stored blob.
	Save(ctx context.Context, data []byte) error

	// Close releases backend resources.
	Close() error
}

// Backend names accepted in configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNull  = "null"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	Path      string // file backend
	RedisAddr string // redis backend, host:port
	RedisKey  string
	MongoURI  string // mongo backend
	MongoDB   string
}

// Open creates the configured store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path)
	case BackendRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisKey)
	case BackendMongo:
		return NewMongoStore(ctx, opts.MongoURI, opts.MongoDB)
	case BackendNull:
		return NewNullStore(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", opts.Backend)
	}
}
