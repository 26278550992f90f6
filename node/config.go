package node

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/luca-patrignani/swarmhost/crypto"
)

// NodeConfig is the configuration of a swarmhost node.
type NodeConfig struct {
	// Identity signs this node's actions. It is never serialized.
	Identity *crypto.KeyPair `json:"-"`

	// BootstrapServer is the address used for peer discovery; empty means none.
	BootstrapServer string `json:"bootstrap_server,omitempty"`

	// ListenPort is the port to accept incoming connections on.
	ListenPort uint16 `json:"listen_port"`

	Consensus ConsensusConfig `json:"consensus"`
	Network   NetworkConfig   `json:"network"`
	State     StateConfig     `json:"state"`
}

// ConsensusConfig tunes the consensus layer.
type ConsensusConfig struct {
	// Quorum as the fraction QuorumNumerator/QuorumDenominator of players.
	QuorumNumerator   uint32 `json:"quorum_numerator"`
	QuorumDenominator uint32 `json:"quorum_denominator"`

	// OptimisticExecution lets actions be applied before final confirmation.
	OptimisticExecution bool `json:"optimistic_execution"`

	// ConsensusTimeout bounds the time spent agreeing on one action.
	ConsensusTimeout Seconds `json:"consensus_timeout"`

	// MaxConcurrentValidations caps the actions being validated at once.
	MaxConcurrentValidations int `json:"max_concurrent_validations"`
}

// NetworkConfig tunes the transport layer.
type NetworkConfig struct {
	// MaxPeers caps the connected peers a Session accepts. Zero means no cap.
	MaxPeers int `json:"max_peers"`

	// HeartbeatInterval is how often peers are pinged.
	HeartbeatInterval Seconds `json:"heartbeat_interval"`

	// PeerTimeout is how long a silent peer is kept.
	PeerTimeout Seconds `json:"peer_timeout"`

	// MaxMessageSize is in bytes.
	MaxMessageSize int `json:"max_message_size"`

	EnableCompression bool `json:"enable_compression"`
}

// StateConfig tunes snapshotting and action log retention.
type StateConfig struct {
	// SnapshotInterval is counted in actions.
	SnapshotInterval uint32 `json:"snapshot_interval"`

	MaxSnapshotsInMemory int `json:"max_snapshots_in_memory"`

	// MaxActionLogSize is the number of actions kept before a snapshot is required.
	MaxActionLogSize int `json:"max_action_log_size"`
}

// Seconds is a duration persisted as a whole number of seconds.
type Seconds time.Duration

func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(time.Duration(s) / time.Second))
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	var secs uint64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	*s = Seconds(time.Duration(secs) * time.Second)
	return nil
}

// DefaultConsensusConfig returns a 2/3 quorum with optimistic execution.
func DefaultConsensusConfig() ConsensusConfig {
	return ConsensusConfig{
		QuorumNumerator:          2,
		QuorumDenominator:        3,
		OptimisticExecution:      true,
		ConsensusTimeout:         Seconds(5 * time.Second),
		MaxConcurrentValidations: 100,
	}
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		MaxPeers:          50,
		HeartbeatInterval: Seconds(10 * time.Second),
		PeerTimeout:       Seconds(30 * time.Second),
		MaxMessageSize:    1024 * 1024,
		EnableCompression: true,
	}
}

func DefaultStateConfig() StateConfig {
	return StateConfig{
		SnapshotInterval:     100,
		MaxSnapshotsInMemory: 10,
		MaxActionLogSize:     1000,
	}
}

// DefaultConfig returns the default tunables and no identity. It does not
// pass Validate until an identity is attached.
func DefaultConfig() NodeConfig {
	return NodeConfig{
		Consensus: DefaultConsensusConfig(),
		Network:   DefaultNetworkConfig(),
		State:     DefaultStateConfig(),
	}
}

// NewConfig returns the default configuration with a freshly generated identity.
func NewConfig() NodeConfig {
	return ConfigWithIdentity(crypto.GenerateKeyPair())
}

// ConfigWithIdentity returns the default configuration using kp.
func ConfigWithIdentity(kp *crypto.KeyPair) NodeConfig {
	cfg := DefaultConfig()
	cfg.Identity = kp
	return cfg
}

// PlayerID returns the public key of the configured identity, if any.
func (c NodeConfig) PlayerID() (crypto.PlayerID, bool) {
	if c.Identity == nil {
		return crypto.ZeroPlayerID, false
	}
	return c.Identity.PublicKey(), true
}

func (c NodeConfig) WithIdentity(kp *crypto.KeyPair) NodeConfig {
	c.Identity = kp
	return c
}

func (c NodeConfig) WithBootstrap(server string) NodeConfig {
	c.BootstrapServer = server
	return c
}

func (c NodeConfig) WithPort(port uint16) NodeConfig {
	c.ListenPort = port
	return c
}

func (c NodeConfig) WithOptimisticExecution(enabled bool) NodeConfig {
	c.Consensus.OptimisticExecution = enabled
	return c
}

func (c NodeConfig) WithQuorum(numerator, denominator uint32) NodeConfig {
	c.Consensus.QuorumNumerator = numerator
	c.Consensus.QuorumDenominator = denominator
	return c
}

func (c NodeConfig) WithMaxPeers(n int) NodeConfig {
	c.Network.MaxPeers = n
	return c
}

// Validate rejects configurations a Session cannot be built from.
// The returned error wraps ErrConfig.
func (c NodeConfig) Validate() error {
	if c.Identity == nil {
		return fmt.Errorf("%w: %w", ErrConfig, ErrMissingIdentity)
	}
	if c.Consensus.QuorumNumerator == 0 || c.Consensus.QuorumDenominator == 0 {
		return fmt.Errorf("%w: %w: numerator and denominator must be nonzero", ErrConfig, ErrInvalidQuorum)
	}
	if c.Consensus.QuorumNumerator > c.Consensus.QuorumDenominator {
		return fmt.Errorf("%w: %w: numerator %d exceeds denominator %d", ErrConfig, ErrInvalidQuorum,
			c.Consensus.QuorumNumerator, c.Consensus.QuorumDenominator)
	}
	if c.Network.MaxMessageSize <= 0 {
		return fmt.Errorf("%w: %w", ErrConfig, ErrInvalidMessageSize)
	}
	return nil
}

// Quorum returns the minimum number of agreeing players out of n needed to
// reach the configured fraction, that is ceil(n*numerator/denominator).
// A zero denominator demands all n players.
func (c ConsensusConfig) Quorum(n int) int {
	if n <= 0 {
		return 0
	}
	if c.QuorumDenominator == 0 {
		return n
	}
	num := uint64(n) * uint64(c.QuorumNumerator)
	den := uint64(c.QuorumDenominator)
	return int((num + den - 1) / den)
}
