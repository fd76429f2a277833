package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Debug server starting"
	LogMsgServerStopped    = "Debug server stopped"
	LogMsgServeFailed      = "Debug server failed"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff  = "nosniff"
	HeaderValueDeny     = "DENY"
	HeaderValueNoReferr = "no-referrer"
)

// Route paths
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	// MaxRequestBytes caps request bodies; no route reads one
	MaxRequestBytes = 1 << 10
)
