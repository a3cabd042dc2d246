package app

import (
	"fmt"

	"lifebox/internal/slots"
	"lifebox/internal/slots/sqlitestore"
)

// SlotBackend loads and persists the save slot record.
type SlotBackend interface {
	slots.Source
	slots.Sink
	Close() error
}

type fileBackend struct {
	slots.File
}

func (fileBackend) Close() error { return nil }

// OpenSlots opens the backend selected by cfg.Store.
func OpenSlots(cfg *Config) (SlotBackend, error) {
	switch cfg.Store {
	case StoreJSON:
		return fileBackend{File: slots.File{Path: cfg.SlotsPath}}, nil
	case StoreSQLite:
		store, err := sqlitestore.Open(cfg.SlotsPath)
		if err != nil {
			return nil, fmt.Errorf("open slot database: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

var _ SlotBackend = (*sqlitestore.Store)(nil)
