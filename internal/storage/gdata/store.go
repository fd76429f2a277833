package gdata

import (
	"context"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/storage"
)

const savesObject = "saves"

// Store keeps the snapshot in the OS application data directory
// (~/.local/share/<app> on Linux), one property per save profile.
type Store struct {
	manager *gdata.Manager
	profile string
	codec   *storage.Codec
}

// Open creates the data directory for appName if needed
func Open(appName, profile string, codec *storage.Codec) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open app data dir for %s: %w", appName, err)
	}
	return &Store{manager: manager, profile: profile, codec: codec}, nil
}

// Load reads and validates the saved snapshot; nil, nil when there is none
func (s *Store) Load(ctx context.Context) (*domain.StateSnapshot, error) {
	if !s.manager.ObjectPropExists(savesObject, s.profile) {
		logger.FromContext(ctx).Info("No saved state found", "profile", s.profile)
		return nil, nil
	}

	data, err := s.manager.LoadObjectProp(savesObject, s.profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return s.codec.Decode(data)
}

// Save overwrites the saved snapshot
func (s *Store) Save(ctx context.Context, snap *domain.StateSnapshot) error {
	data, err := s.codec.Encode(snap)
	if err != nil {
		return err
	}

	if err := s.manager.SaveObjectProp(savesObject, s.profile, data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logger.FromContext(ctx).Debug("State saved", "profile", s.profile, "bytes", len(data))
	return nil
}
