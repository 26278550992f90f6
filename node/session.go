package node

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/luca-patrignani/swarmhost/crypto"
)

// Version of the swarmhost node library.
const Version = "0.1.0"

// Session guards the lifecycle of one node: it is either stopped or running,
// and while running it tracks the peers the network layer reports.
type Session struct {
	config   NodeConfig
	playerID crypto.PlayerID
	logger   *slog.Logger

	mu    sync.RWMutex
	state nodeState
}

// nodeState is only accessed with Session.mu held.
type nodeState struct {
	running bool
	peers   []crypto.PlayerID
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle events. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession validates cfg and returns a stopped session for it.
// Validation failures wrap ErrConfig.
func NewSession(cfg NodeConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	playerID, ok := cfg.PlayerID()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrConfig, ErrMissingIdentity)
	}
	s := &Session{
		config:   cfg,
		playerID: playerID,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("player", playerID.Short())
	return s, nil
}

// PlayerID returns the identifier of this node's player.
func (s *Session) PlayerID() crypto.PlayerID {
	return s.playerID
}

// Config returns the configuration the session was built from.
func (s *Session) Config() NodeConfig {
	return s.config
}

// Start moves the session to running. It fails with ErrAlreadyRunning, and
// changes nothing, if the session is already running.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.running {
		return fmt.Errorf("%w: %w", ErrNode, ErrAlreadyRunning)
	}
	s.logger.Info("starting swarmhost node", "port", s.config.ListenPort, "version", Version)
	s.state.running = true
	return nil
}

// Stop moves the session to stopped and forgets every peer. Stopping a
// stopped session is a no-op.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.running {
		return nil
	}
	s.logger.Info("stopping swarmhost node", "peers", len(s.state.peers))
	s.state.running = false
	s.state.peers = nil
	return nil
}

func (s *Session) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.running
}

func (s *Session) PeerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.peers)
}

// Peers returns a copy of the connected peers in the order they were added.
func (s *Session) Peers() []crypto.PlayerID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.peers)
}

// AddPeer records a connected peer. Duplicates are kept. It fails with
// ErrNotRunning on a stopped session and with ErrPeerLimit once
// Network.MaxPeers peers are recorded.
func (s *Session) AddPeer(id crypto.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.running {
		return fmt.Errorf("%w: %w", ErrNode, ErrNotRunning)
	}
	if limit := s.config.Network.MaxPeers; limit > 0 && len(s.state.peers) >= limit {
		return fmt.Errorf("%w: %w: %d peers", ErrNode, ErrPeerLimit, limit)
	}
	s.state.peers = append(s.state.peers, id)
	s.logger.Debug("peer connected", "peer", id.Short(), "peers", len(s.state.peers))
	return nil
}

// RemovePeer forgets the first occurrence of id and reports whether one was found.
func (s *Session) RemovePeer(id crypto.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.state.peers, id)
	if i < 0 {
		return false
	}
	s.state.peers = slices.Delete(s.state.peers, i, i+1)
	s.logger.Debug("peer disconnected", "peer", id.Short(), "peers", len(s.state.peers))
	return true
}

// JoinGame joins the game session gameID. It only checks that the node is
// running.
func (s *Session) JoinGame(gameID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.state.running {
		return fmt.Errorf("%w: %w", ErrNode, ErrNotRunning)
	}
	s.logger.Info("joining game", "game", gameID)
	return nil
}

// SubmitAction hands an action to the network. It only checks that the node
// is running; the signature is not verified here.
func (s *Session) SubmitAction(kind uint32, payload []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.state.running {
		return fmt.Errorf("%w: %w", ErrNode, ErrNotRunning)
	}
	s.logger.Debug("action submitted", "kind", kind, "size", len(payload))
	return nil
}
