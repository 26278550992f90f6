package node

import "errors"

// Error kinds
var (
	ErrConfig = errors.New("configuration error")
	ErrNode   = errors.New("node error")
)

// Configuration errors, wrapped with ErrConfig
var (
	ErrMissingIdentity    = errors.New("identity must be set")
	ErrInvalidQuorum      = errors.New("invalid quorum fraction")
	ErrInvalidMessageSize = errors.New("max message size must be > 0")
)

// Lifecycle errors, wrapped with ErrNode
var (
	ErrAlreadyRunning = errors.New("node already running")
	ErrNotRunning     = errors.New("node not running")
	ErrPeerLimit      = errors.New("peer limit reached")
)
