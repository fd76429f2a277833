package cooldown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	times map[string]time.Time
	err   error
}

func (m *memStore) LastUsed(action string) *time.Time {
	if t, ok := m.times[action]; ok {
		return &t
	}
	return nil
}

func (m *memStore) SetLastUsed(_ context.Context, action string, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	if m.times == nil {
		m.times = make(map[string]time.Time)
	}
	m.times[action] = at
	return nil
}

func TestCheckCooldownInternal(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 5 * time.Minute

	ptr := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name           string
		lastUsed       *time.Time
		wantOnCooldown bool
		wantRemaining  time.Duration
	}{
		{"nil lastUsed", nil, false, 0},
		{"just used", ptr(0), true, duration},
		{"halfway", ptr(2*time.Minute + 30*time.Second), true, 2*time.Minute + 30*time.Second},
		{"exactly expired", ptr(duration), false, 0},
		{"long ago", ptr(time.Hour), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onCooldown, remaining := checkCooldownInternal(tt.lastUsed, duration, now)
			assert.Equal(t, tt.wantOnCooldown, onCooldown)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestEnforceCooldown(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := &memStore{}
	svc := NewService(store, Config{Cooldowns: map[string]time.Duration{ActionLoginReward: 10 * time.Second}}, clock)

	calls := 0
	run := func() error { calls++; return nil }

	require.NoError(t, svc.EnforceCooldown(ctx, ActionLoginReward, run))
	assert.Equal(t, 1, calls)
	require.NotNil(t, svc.GetLastUsed(ActionLoginReward))
	assert.Equal(t, now, *svc.GetLastUsed(ActionLoginReward))

	now = now.Add(4 * time.Second)
	err := svc.EnforceCooldown(ctx, ActionLoginReward, run)
	require.ErrorIs(t, err, ErrOnCooldown{})
	var cdErr ErrOnCooldown
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, 6*time.Second, cdErr.Remaining)
	assert.Equal(t, 1, calls, "fn must not run while on cooldown")

	now = now.Add(6 * time.Second)
	require.NoError(t, svc.EnforceCooldown(ctx, ActionLoginReward, run))
	assert.Equal(t, 2, calls)
}

func TestEnforceCooldown_FailingActionDoesNotStartCooldown(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewService(store, Config{}, nil)

	err := svc.EnforceCooldown(ctx, "water", func() error { return errors.New("no can") })
	require.Error(t, err)
	assert.Nil(t, svc.GetLastUsed("water"))
}

func TestEnforceCooldown_StoreError(t *testing.T) {
	svc := NewService(&memStore{err: errors.New("disk full")}, Config{}, nil)

	err := svc.EnforceCooldown(context.Background(), "water", func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update cooldown")
}

func TestEnforceCooldown_DevMode(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memStore{}, Config{DevMode: true}, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.EnforceCooldown(ctx, ActionLoginReward, func() error { return nil }))
	}
	onCooldown, _ := svc.CheckCooldown(ActionLoginReward)
	assert.False(t, onCooldown)
}

func TestErrOnCooldown_Error(t *testing.T) {
	assert.Equal(t, "action 'x' on cooldown: 2m 5s remaining", ErrOnCooldown{Action: "x", Remaining: 125 * time.Second}.Error())
	assert.Equal(t, "action 'x' on cooldown: 9s remaining", ErrOnCooldown{Action: "x", Remaining: 9 * time.Second}.Error())
}

func TestGetCooldownDuration(t *testing.T) {
	c := Config{Cooldowns: map[string]time.Duration{"a": time.Hour}}
	assert.Equal(t, time.Hour, c.GetCooldownDuration("a"))
	assert.Equal(t, DefaultCooldownDuration, c.GetCooldownDuration("b"))
}
