// Package reward hands out free seeds when the player starts a session.
package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/bloom/internal/catalog"
	"github.com/osse101/bloom/internal/cooldown"
	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/logger"
	"github.com/osse101/bloom/internal/metrics"
	"github.com/osse101/bloom/internal/utils"
)

// SeedPicker picks a random species for a reward seed
type SeedPicker interface {
	Random(r utils.Roller) *catalog.Species
}

// SeedAdder receives the reward seeds
type SeedAdder interface {
	AddQuantity(ctx context.Context, kind domain.ItemKind, speciesID string, n int) (*domain.InventoryStack, error)
}

// LoginRecorder tracks session starts
type LoginRecorder interface {
	LastLoginTime() *time.Time
	RecordLogin(ctx context.Context, at time.Time) error
}

// Batcher coalesces the saves made inside fn into one write
type Batcher interface {
	Batch(ctx context.Context, fn func() error) error
}

// Result describes what a login earned
type Result struct {
	// LastLogin is the previous session start, nil on a first run
	LastLogin *time.Time
	Granted   bool
	Seeds     []domain.HarvestedItem
	// Remaining is the wait until the next reward when none was granted
	Remaining time.Duration
}

// Service defines the login reward operation
type Service interface {
	ClaimLoginReward(ctx context.Context) (*Result, error)
}

// Config controls the reward size
type Config struct {
	Seeds int
}

type service struct {
	cooldowns cooldown.Service
	picker    SeedPicker
	seeds     SeedAdder
	logins    LoginRecorder
	batcher   Batcher
	roller    utils.Roller
	config    Config
	now       func() time.Time
}

// NewService creates the login reward service. now defaults to time.Now.
func NewService(cooldowns cooldown.Service, picker SeedPicker, seeds SeedAdder, logins LoginRecorder, batcher Batcher, roller utils.Roller, config Config, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		cooldowns: cooldowns,
		picker:    picker,
		seeds:     seeds,
		logins:    logins,
		batcher:   batcher,
		roller:    roller,
		config:    config,
		now:       now,
	}
}

// ClaimLoginReward grants reward seeds when the cooldown allows it and
// always records the login. A reward still on cooldown is not an error.
func (s *service) ClaimLoginReward(ctx context.Context) (*Result, error) {
	log := logger.FromContext(ctx)
	result := &Result{LastLogin: s.logins.LastLoginTime()}

	err := s.batcher.Batch(ctx, func() error {
		err := s.cooldowns.EnforceCooldown(ctx, cooldown.ActionLoginReward, func() error {
			return s.grant(ctx, result)
		})

		var onCooldown cooldown.ErrOnCooldown
		switch {
		case errors.As(err, &onCooldown):
			result.Remaining = onCooldown.Remaining
			log.Debug(LogMsgRewardOnCooldown, "remaining", onCooldown.Remaining)
		case err != nil:
			return err
		default:
			result.Granted = true
		}

		return s.logins.RecordLogin(ctx, s.now())
	})
	if err != nil {
		return nil, err
	}

	if result.Granted {
		metrics.LoginRewards.Inc()
		log.Info(LogMsgRewardGranted, "seeds", result.Seeds)
	}
	return result, nil
}

func (s *service) grant(ctx context.Context, result *Result) error {
	index := make(map[string]int, s.config.Seeds)
	for i := 0; i < s.config.Seeds; i++ {
		sp := s.picker.Random(s.roller)
		if sp == nil {
			return fmt.Errorf(ErrMsgNoSpecies, domain.ErrSpeciesNotFound)
		}
		if _, err := s.seeds.AddQuantity(ctx, domain.KindSeed, sp.ID, 1); err != nil {
			return fmt.Errorf(ErrMsgAddSeedFailed, sp.ID, err)
		}

		if j, ok := index[sp.ID]; ok {
			result.Seeds[j].Amount++
			continue
		}
		index[sp.ID] = len(result.Seeds)
		result.Seeds = append(result.Seeds, domain.HarvestedItem{Kind: domain.KindSeed, SpeciesID: sp.ID, Amount: 1})
	}
	return nil
}
