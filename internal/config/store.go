package config

import (
	"fmt"
	"strings"
	"time"
)

type Store struct {
	Driver      StoreDriver   `env:"POS_STORE_DRIVER" envDefault:"BOLT"`
	Path        string        `env:"POS_STORE_PATH" envDefault:"pos.db"`
	OpenTimeout time.Duration `env:"POS_STORE_OPEN_TIMEOUT" envDefault:"1s"`
}

// StoreDriver selects the persistent store backend.
type StoreDriver uint8

const (
	StoreDriverBolt StoreDriver = iota
	StoreDriverMemory
)

func (d StoreDriver) String() string {
	switch d {
	case StoreDriverBolt:
		return "BOLT"
	case StoreDriverMemory:
		return "MEMORY"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *StoreDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "BOLT":
		*d = StoreDriverBolt
	case "MEMORY":
		*d = StoreDriverMemory
	default:
		return fmt.Errorf("unknown store driver: %s", text)
	}
	return nil
}

func (d StoreDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
