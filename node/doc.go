// Package node holds the configuration and lifecycle guard of a swarmhost
// node.
//
// # Core Components
//
// NodeConfig: the identity and tunables of a node (consensus quorum, network
// limits, state retention). It is validated once, by NewSession.
//
// Session: a Stopped/Running state machine for one node instance together
// with the list of peers the network layer reports as connected.
//
// Action: a payload signed by a player, the unit handed to the consensus
// layer.
//
// # Lifecycle
//
//	cfg := node.NewConfig().WithPort(9000)
//	s, err := node.NewSession(cfg)
//	if err != nil {
//	    return err // wraps node.ErrConfig
//	}
//	if err := s.Start(); err != nil {
//	    return err // node.ErrAlreadyRunning
//	}
//	defer s.Stop()
//
//	act := node.NewAction(cfg.Identity, 1, []byte("move:north"))
//	if err := s.SubmitAction(act.Kind, act.Payload); err != nil {
//	    return err // node.ErrNotRunning
//	}
//
// JoinGame and SubmitAction only check that the session is running. They do
// not verify signatures: whoever receives an Action is expected to call
// Action.Verify against the claimed player before trusting it.
//
// # Concurrency
//
// All Session methods are safe for concurrent use. State is guarded by a single
// sync.RWMutex; no method blocks on anything other than that lock. Of two
// concurrent Start calls exactly one succeeds.
//
// # Persistence
//
// NodeConfig is stored as JSON by Save and read back by LoadConfig. The
// identity is never part of the file; attach it again with WithIdentity, for
// instance from a seed kept in a separate secure store and rebuilt with
// crypto.KeyPairFromPrivateBytes.
package node
