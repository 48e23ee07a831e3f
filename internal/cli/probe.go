// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/probe"
)

func newProbe(registry *device.Registry, aiClient ai.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <ip>",
		Short: "Open a simulated terminal session to a device",
		Long: `Starts an interactive session where typed commands are answered
with fabricated output from the text-generation service.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, ok := registry.Get(args[0])

			if !ok {
				return fmt.Errorf("no device at %s, run a scan or add one first", args[0])
			}

			session := probe.NewSession(
				dev,
				aiClient,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)

			return session.Run(cmd.Context())
		},
	}
}
