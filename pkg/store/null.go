package store

import "context"

// NullStore discards saves and never loads anything. Used when persistence
// is disabled (tests, one-shot CLI conversions).
type NullStore struct{}

// NewNullStore creates a no-op store.
func NewNullStore() *NullStore { return &NullStore{} }

// Load always reports nothing saved.
func (s *NullStore) Load(ctx context.Context) ([]byte, bool, error) { return nil, false, nil }

// Save discards the blob.
func (s *NullStore) Save(ctx context.Context, data []byte) error { return nil }

// Close does nothing.
func (s *NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
