// Package storage holds the StateStore backends and the snapshot codec they share.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/validation"
)

// Codec turns snapshots into JSON and back. Decoding checks the bytes against
// the state schema before unmarshalling.
type Codec struct {
	validator validation.SnapshotValidator
}

// NewCodec compiles the state schema
func NewCodec() (*Codec, error) {
	v, err := validation.NewSnapshotValidator()
	if err != nil {
		return nil, err
	}
	return &Codec{validator: v}, nil
}

// Encode serializes a snapshot
func (c *Codec) Encode(snap *domain.StateSnapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

// Decode validates and deserializes a snapshot
func (c *Codec) Decode(data []byte) (*domain.StateSnapshot, error) {
	if err := c.validator.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}

	var snap domain.StateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSnapshot, err)
	}
	return &snap, nil
}
