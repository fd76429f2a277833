package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/bloom/internal/logger"
)

// Service manages action cooldowns for the player
type Service interface {
	// CheckCooldown checks if an action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration)
	CheckCooldown(action string) (bool, time.Duration)

	// EnforceCooldown checks the cooldown and runs fn if allowed, then records the use.
	// A failing fn does not start the cooldown.
	EnforceCooldown(ctx context.Context, action string, fn func() error) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(action string) *time.Time
}

// Store holds last-use timestamps. The game state implements it so
// cooldowns survive restarts.
type Store interface {
	LastUsed(action string) *time.Time
	SetLastUsed(ctx context.Context, action string, at time.Time) error
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

type service struct {
	store  Store
	config Config
	now    func() time.Time
}

// NewService creates a cooldown service backed by store. now defaults to time.Now.
func NewService(store Store, config Config, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, config: config, now: now}
}

func (s *service) CheckCooldown(action string) (bool, time.Duration) {
	if s.config.DevMode {
		return false, 0
	}
	return checkCooldownInternal(s.store.LastUsed(action), s.config.GetCooldownDuration(action), s.now())
}

func (s *service) EnforceCooldown(ctx context.Context, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	if s.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action)
	} else if onCooldown, remaining := s.CheckCooldown(action); onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	if err := s.store.SetLastUsed(ctx, action, s.now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action)
	return nil
}

func (s *service) GetLastUsed(action string) *time.Time {
	return s.store.LastUsed(action)
}

// checkCooldownInternal never reports a cooldown for an action that was never used
func checkCooldownInternal(lastUsed *time.Time, duration time.Duration, now time.Time) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
