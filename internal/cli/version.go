// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/info"
	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Run: func(cmd *cobra.Command, args []string) {
			logger.New().Info().Msgf("omniscan: %s", info.VERSION)
		},
	}
}
