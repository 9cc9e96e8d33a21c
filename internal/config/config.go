package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MatchConfig holds the tunable match settings supplied by the runner.
type MatchConfig struct {
	WinThreshold         int    `json:"win_threshold"`
	LastTrickBonusThirds int    `json:"last_trick_bonus_thirds"`
	FloorHandScore       bool   `json:"floor_hand_score"`
	// RulesScript optionally points at a Lua variant definition; when empty
	// the built-in tressette rules apply.
	RulesScript string `json:"rules_script"`
}

var (
	cfg      *MatchConfig
	loadOnce sync.Once
	loadErr  error
)

// Load reads the match configuration from the given path. Only the first
// call loads; later calls return the first result.
func Load(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read match config: %w", err)
			return
		}

		var c MatchConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal match config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// Get returns the loaded configuration, or safe defaults when no file was
// loaded: classic play to 21 with a one-point last-trick bonus.
func Get() MatchConfig {
	if cfg == nil {
		return MatchConfig{WinThreshold: 21, LastTrickBonusThirds: 3}
	}
	out := *cfg
	if out.WinThreshold <= 0 {
		out.WinThreshold = 21
	}
	if out.LastTrickBonusThirds < 0 {
		out.LastTrickBonusThirds = 3
	}
	return out
}
