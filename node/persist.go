package node

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadConfig reads a configuration written by Save. Fields missing from the
// file keep their defaults. The result has no identity and is not validated.
func LoadConfig(path string) (*NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open configuration file: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: could not parse configuration file: %w", ErrConfig, err)
	}
	return &cfg, nil
}

// Save writes c as JSON to path, readable by the owner only. The identity is
// left out.
func (c NodeConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("could not write configuration file: %w", err)
	}
	return nil
}
