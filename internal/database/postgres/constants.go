package postgres

// Queries
const (
	queryLoadState = `SELECT state FROM save_states WHERE profile = $1`

	queryLockState = `SELECT revision FROM save_states WHERE profile = $1 FOR UPDATE`

	queryUpsertState = `
INSERT INTO save_states (profile, version, state)
VALUES ($1, $2, $3)
ON CONFLICT (profile) DO UPDATE
SET version = EXCLUDED.version,
    state = EXCLUDED.state,
    revision = save_states.revision + 1,
    updated_at = NOW()`

	queryRevision = `SELECT revision FROM save_states WHERE profile = $1`
)
