// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/store"
)

func newReset(registry *device.Registry, repo store.Repository) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all saved devices and reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete saved state without --yes")
			}

			registry.SetAll(nil)

			if err := repo.Reset(); err != nil {
				return err
			}

			logger.New().Info().Msg("saved state cleared")

			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")

	return cmd
}
