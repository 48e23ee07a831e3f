// SPDX-License-Identifier: GPL-3.0-or-later

// Package cli defines the omniscan command tree
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/config"
	"github.com/sapan15/Omni-IP-Scanner/internal/core"
	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/network"
	"github.com/sapan15/Omni-IP-Scanner/pkg/oui"
	"github.com/sapan15/Omni-IP-Scanner/pkg/store"
)

// Root returns the omniscan root command. Running it with no
// subcommand renders the persisted device inventory.
func Root(
	runner core.Runner,
	conf *config.Config,
	registry *device.Registry,
	repo store.Repository,
	aiClient ai.Client,
	userNet network.Network,
	vendorRepo oui.VendorRepo,
) (*cobra.Command, error) {
	var printJson bool

	cmd := &cobra.Command{
		Use:   "omniscan",
		Short: "Simulated network scanner dashboard",
		Long: `Terminal dashboard over a simulated device inventory. Scans,
probes and audits are fabricated locally or by a generative-text
service, nothing touches the network.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices := registry.List()

			if printJson {
				data, err := json.MarshalIndent(devices, "", "  ")

				if err != nil {
					return err
				}

				fmt.Println(string(data))

				return nil
			}

			core.RenderDeviceTable(devices)

			return nil
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")

	cmd.AddCommand(newScan(runner, conf, registry, userNet, vendorRepo))
	cmd.AddCommand(newDevices(registry))
	cmd.AddCommand(newProbe(registry, aiClient))
	cmd.AddCommand(newFingerprint(registry, aiClient))
	cmd.AddCommand(newAudit(registry, repo, aiClient))
	cmd.AddCommand(newReset(registry, repo))
	cmd.AddCommand(newUpdateVendors(vendorRepo))
	cmd.AddCommand(newVersion())

	return cmd, nil
}
