// Package cli is the maintenance command line of the logistics service:
// schema migrations and bulk route removal.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Backend performs the maintenance operations against the route store.
type Backend interface {
	MigrateUp() error
	MigrateDown() error
	SchemaVersion() (version uint, dirty bool, err error)
	DeleteAllRoutes(ctx context.Context) (int64, error)
	Close() error
}

// Connector opens a Backend. It is called only by commands that need one.
type Connector func() (Backend, error)

func NewRootCmd(connect Connector) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Maintain the logistics route store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCmd(connect))
	cmd.AddCommand(newVersionCmd(connect))
	cmd.AddCommand(newWipeCmd(connect))
	return cmd
}

func withBackend(connect Connector, fn func(Backend) error) (err error) {
	backend, err := connect()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := backend.Close(); err == nil {
			err = closeErr
		}
	}()
	return fn(backend)
}
