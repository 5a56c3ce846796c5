package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"labrec/internal/config"
	"labrec/internal/logging"
)

// commandContext carries the lazily loaded configuration store shared by
// every subcommand. The store is resolved at most once per invocation.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string
	historyFlag   *string

	once       sync.Once
	store      *config.Store
	configPath string
	loadErr    error

	sessionOnce sync.Once
	sessionID   string
}

func (c *commandContext) ensureStore() (*config.Store, error) {
	c.once.Do(func() {
		explicit := ""
		if c.configFlag != nil {
			explicit = strings.TrimSpace(*c.configFlag)
		}
		path, exists, err := config.ResolveConfigPath(explicit)
		if err != nil {
			c.loadErr = err
			return
		}
		if explicit != "" && !exists {
			c.loadErr = fmt.Errorf("config file not found: %s", path)
			return
		}
		store := config.NewStore()
		if exists {
			if err := store.LoadFile(path); err != nil {
				c.loadErr = err
				return
			}
			c.configPath = path
		}
		c.store = store
	})
	return c.store, c.loadErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	store, err := c.ensureStore()
	if err != nil {
		return nil, err
	}
	opts := logging.Options{Writer: cmd.ErrOrStderr()}
	if c.logLevelFlag != nil {
		opts.Level = *c.logLevelFlag
	}
	if c.logFormatFlag != nil {
		opts.Format = *c.logFormatFlag
	}
	logger, err := logging.NewFromStore(store, opts)
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// session returns a stable identifier for this invocation, shared by log
// lines and history records.
func (c *commandContext) session() string {
	c.sessionOnce.Do(func() {
		c.sessionID = uuid.NewString()
	})
	return c.sessionID
}

func (c *commandContext) historyPath() (string, error) {
	if c.historyFlag != nil && strings.TrimSpace(*c.historyFlag) != "" {
		return config.ExpandPath(strings.TrimSpace(*c.historyFlag))
	}
	return "", nil
}
