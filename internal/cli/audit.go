// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/store"
)

const auditWorkers = 4

func newAudit(
	registry *device.Registry,
	repo store.Repository,
	aiClient ai.Client,
) *cobra.Command {
	var skipFingerprints bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Generate a free-text security audit of the inventory",
		Long: `Fingerprints every device, then asks the text-generation service
for a prose audit of the whole inventory. The report is printed
verbatim and stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			if registry.Len() == 0 {
				return fmt.Errorf("inventory is empty, run a scan first")
			}

			if !skipFingerprints {
				if err := fingerprintAll(cmd, registry, aiClient); err != nil {
					return err
				}
			}

			report := aiClient.GenerateAudit(cmd.Context(), registry.List())

			fmt.Fprintln(cmd.OutOrStdout(), report)

			if err := repo.SaveReport("audit", report); err != nil {
				return fmt.Errorf("failed to store audit report: %w", err)
			}

			log.Info().Msg("audit stored")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipFingerprints, "skip-fingerprints", false, "audit without refreshing OS guesses")

	cmd.AddCommand(newAuditHistory(repo))

	return cmd
}

// fingerprintAll refreshes OS guesses for every device over a small
// worker pool before the audit is requested
func fingerprintAll(cmd *cobra.Command, registry *device.Registry, aiClient ai.Client) error {
	var wg sync.WaitGroup

	pool, err := ants.NewPoolWithFunc(auditWorkers, func(i interface{}) {
		defer wg.Done()

		dev := i.(device.Device)

		fp := aiClient.FingerprintDevice(cmd.Context(), dev)

		dev.OSGuess = fmt.Sprintf("%s (%d%%)", fp.OS, fp.Confidence)
		dev.LastSeen = time.Now()

		if err := registry.Upsert(dev); err != nil {
			logger.New().Error().Err(err).Str("ip", dev.IP).Msg("failed to save fingerprint")
		}
	})

	if err != nil {
		return err
	}

	defer pool.Release()

	for _, dev := range registry.List() {
		wg.Add(1)

		if err := pool.Invoke(dev); err != nil {
			wg.Done()
			return err
		}
	}

	wg.Wait()

	return nil
}

func newAuditHistory(repo store.Repository) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored audit reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := repo.Reports(limit)

			if err != nil {
				return err
			}

			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no stored reports")
				return nil
			}

			out := cmd.OutOrStdout()

			for _, r := range reports {
				fmt.Fprintf(
					out,
					"--- %s (%s, id %d) ---\n%s\n\n",
					r.Kind,
					r.CreatedAt.Format(time.RFC3339),
					r.ID,
					r.Body,
				)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "max number of reports to show")

	return cmd
}
