package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 10 * time.Second
)

// =============================================================================
// Action Names
// =============================================================================

const (
	// ActionLoginReward is the free seed handed out when the game starts
	ActionLoginReward = "login_reward"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgCooldownEnforced is logged when cooldown is successfully enforced and updated
	LogMsgCooldownEnforced = "Cooldown enforced successfully"
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgUpdateCooldownFailed is returned when recording the use fails
	ErrMsgUpdateCooldownFailed = "failed to update cooldown: %w"

	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
