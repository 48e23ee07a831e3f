// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

func newFingerprint(registry *device.Registry, aiClient ai.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <ip>",
		Short: "Ask the text-generation service to guess a device's OS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, ok := registry.Get(args[0])

			if !ok {
				return fmt.Errorf("no device at %s", args[0])
			}

			fp := aiClient.FingerprintDevice(cmd.Context(), dev)

			dev.OSGuess = fmt.Sprintf("%s (%d%%)", fp.OS, fp.Confidence)
			dev.LastSeen = time.Now()

			if err := registry.Upsert(dev); err != nil {
				return err
			}

			logger.New().Info().
				Str("ip", dev.IP).
				Str("os", fp.OS).
				Int("confidence", fp.Confidence).
				Str("rationale", fp.Rationale).
				Msg("fingerprint complete")

			return nil
		},
	}
}
