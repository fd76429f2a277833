package handler

import "time"

const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// ReadinessTimeout bounds a single readiness probe
const ReadinessTimeout = 2 * time.Second

const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response body"
	LogMsgReadinessFailed = "Readiness check failed"
)

const DefaultVersion = "dev"
