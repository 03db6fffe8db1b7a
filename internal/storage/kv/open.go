package kv

import (
	"fmt"

	"github.com/tuanvumaihuynh/pos/internal/config"
)

// Open returns the store selected by cfg.Driver.
func Open(cfg config.Store) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverBolt:
		return NewBoltStore(cfg)
	case config.StoreDriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}
