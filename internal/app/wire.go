package app

import (
	"wordbot/internal/logging"
	"wordbot/internal/router"
	"wordbot/internal/store"
)

// Wire bundles the single store, router and logger of one process.
type Wire struct {
	Config *Config
	Log    *logging.Logger
	Store  *store.WordFileStore
	Router *router.Router
}

// NewWire constructs the dependency graph from cfg.
//
// A log directory that cannot be used is not fatal: logging falls back to
// stderr and the failure is reported there.
func NewWire(cfg *Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, _ := logging.New("wordbot", logging.Options{Dir: cfg.LogDir, Debug: cfg.DebugEnabled()})

	wordStore := store.NewWordFileStore(cfg.DataPath)
	rt := router.New(wordStore, cfg.Debug, log.With("router"))

	log.Debugf("session %s, word list at %s", log.SessionID(), wordStore.Path())
	return &Wire{
		Config: cfg,
		Log:    log,
		Store:  wordStore,
		Router: rt,
	}, nil
}

// Close releases the log file.
func (w *Wire) Close() error {
	return w.Log.Close()
}
