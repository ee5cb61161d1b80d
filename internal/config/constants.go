package config

import "time"

const (
	// Retained conversation turns per chat; history is capped at 2*MaxTurns
	// entries (one user plus one assistant entry per turn).
	MaxTurns = 10

	// Completion request timeout
	RequestTimeout = 60 * time.Second

	// Webhook server shutdown grace period
	ShutdownTimeout = 5 * time.Second
)
