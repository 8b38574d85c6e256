package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newWipeCmd(connect Connector) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every stored route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete routes without --yes")
			}
			return withBackend(connect, func(b Backend) error {
				deleted, err := b.DeleteAllRoutes(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d routes\n", deleted)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}
