// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/config"
	"github.com/sapan15/Omni-IP-Scanner/internal/core"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/network"
	"github.com/sapan15/Omni-IP-Scanner/pkg/oui"
	"github.com/sapan15/Omni-IP-Scanner/pkg/scanner"
)

func newScan(
	runner core.Runner,
	conf *config.Config,
	registry *device.Registry,
	userNet network.Network,
	vendorRepo oui.VendorRepo,
) *cobra.Command {
	var printJson bool
	var noProgress bool
	var outFile string
	var ticks int
	var tickDelay time.Duration
	var seed int64

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a simulated discovery scan",
		Long: `Animates a four phase discovery scan over fixed timers and may
add one fabricated device to the inventory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fabricator := scanner.NewRandomFabricator(userNet, vendorRepo, 0)

			options := []scanner.Option{
				scanner.WithTicksPerPhase(ticks),
				scanner.WithTickDelay(tickDelay),
			}

			if seed != 0 {
				options = append(options, scanner.WithRandSource(rand.NewSource(seed)))
			}

			simScanner := scanner.NewSimScanner(fabricator, options...)

			runner.Initialize(
				simScanner,
				registry,
				noProgress,
				printJson,
				outFile,
			)

			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable all output except for final results")
	cmd.Flags().StringVar(&outFile, "out", "", "also write the final results to this file")
	cmd.Flags().IntVar(&ticks, "ticks", conf.TicksPerPhase, "progress increments per scan phase")
	cmd.Flags().DurationVar(&tickDelay, "tick-delay", conf.TickDelay, "delay between progress increments")
	cmd.Flags().Int64Var(&seed, "seed", conf.Seed, "rng seed for the fabricated device (0 = random)")

	return cmd
}
