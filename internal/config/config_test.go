package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func reset() {
	cfg = nil
	loadOnce = sync.Once{}
	loadErr = nil
}

func TestDefaultsWithoutFile(t *testing.T) {
	reset()
	got := Get()
	if got.WinThreshold != 21 {
		t.Errorf("default win threshold = %d, want 21", got.WinThreshold)
	}
	if got.LastTrickBonusThirds != 3 {
		t.Errorf("default last trick bonus = %d thirds, want 3", got.LastTrickBonusThirds)
	}
	if got.FloorHandScore {
		t.Errorf("floor on by default")
	}
}

func TestLoad(t *testing.T) {
	reset()
	path := filepath.Join(t.TempDir(), "match.json")
	data := `{"win_threshold": 31, "last_trick_bonus_thirds": 0, "floor_hand_score": true}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := Get()
	if got.WinThreshold != 31 {
		t.Errorf("win threshold = %d, want 31", got.WinThreshold)
	}
	if got.LastTrickBonusThirds != 0 {
		t.Errorf("last trick bonus = %d thirds, want 0", got.LastTrickBonusThirds)
	}
	if !got.FloorHandScore {
		t.Errorf("floor not set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	reset()
	if err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadBadJSON(t *testing.T) {
	reset()
	path := filepath.Join(t.TempDir(), "match.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := Load(path); err == nil {
		t.Fatalf("expected error")
	}
}
