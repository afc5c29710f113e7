package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// NumberStore is the fallible key/value backend SafeKV wraps.
type NumberStore interface {
	GetNumber(key string) (float64, bool, error)
	SetNumber(key string, value float64) error
}

// SafeKV adapts a NumberStore to the game's best-effort key/value port.
// Failures are logged and swallowed; reads fall back to the default and
// writes fall back to an in-process copy so the session keeps its record.
type SafeKV struct {
	mu       sync.Mutex
	backend  NumberStore
	fallback map[string]float64
	logger   *log.Logger
}

var (
	_ core.KeyValueStore = (*SafeKV)(nil)
	_ NumberStore        = (*Store)(nil)
)

// NewSafeKV wraps backend. A nil backend keeps values in memory only.
func NewSafeKV(backend NumberStore, logger *log.Logger) *SafeKV {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SafeKV{
		backend:  backend,
		fallback: make(map[string]float64),
		logger:   logger,
	}
}

// GetNumber returns the stored value, or def when it is missing or the
// backend fails.
func (k *SafeKV) GetNumber(key string, def float64) float64 {
	k.mu.Lock()
	defer k.mu.Unlock()

	if v, ok := k.fallback[key]; ok {
		return v
	}
	if k.backend == nil {
		return def
	}

	v, ok, err := k.backend.GetNumber(key)
	if err != nil {
		k.logger.Warn("kv read failed, using default", "key", key, "err", err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// SetNumber stores value. A backend failure is logged; the value is still
// remembered for the rest of the process.
func (k *SafeKV) SetNumber(key string, value float64) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.backend == nil {
		k.fallback[key] = value
		return
	}
	if err := k.backend.SetNumber(key, value); err != nil {
		k.logger.Warn("kv write failed, keeping value in memory", "key", key, "err", err)
		k.fallback[key] = value
		return
	}
	delete(k.fallback, key)
}
