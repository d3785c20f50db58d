package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"outflow/internal/config"
	"outflow/internal/ledger"
	"outflow/internal/service"
	"outflow/internal/storage"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// initLedger builds the configured store, loads the collection, and
// returns the ready ledger. Callers must Close the returned store.
func initLedger(ctx context.Context) (*ledger.Ledger, service.Store, error) {
	store, err := initStore()
	if err != nil {
		return nil, nil, err
	}

	l := ledger.New(store)
	l.Load(ctx)

	return l, store, nil
}

// initStore opens the persistence backend selected by configuration.
func initStore() (service.Store, error) {
	backend := viper.GetString("data.backend")
	if backend == "" {
		backend = "file"
	}

	path := viper.GetString("data.path")
	if path == "" {
		path = config.DefaultDataPath(backend)
	}
	path = config.ExpandPath(path)

	switch backend {
	case "file":
		return storage.NewFileStore(path)
	case "sqlite":
		return storage.NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected file or sqlite)", backend)
	}
}
