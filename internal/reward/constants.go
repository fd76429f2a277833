package reward

const (
	LogMsgRewardGranted    = "Login reward granted"
	LogMsgRewardOnCooldown = "Login reward still on cooldown"
)

const (
	ErrMsgNoSpecies     = "no species to reward: %w"
	ErrMsgAddSeedFailed = "failed to add reward seed %s: %w"
)
