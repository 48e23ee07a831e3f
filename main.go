// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"net/http"

	"github.com/sapan15/Omni-IP-Scanner/internal/cli"
	"github.com/sapan15/Omni-IP-Scanner/internal/config"
	"github.com/sapan15/Omni-IP-Scanner/internal/core"
	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/pkg/ai"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/network"
	"github.com/sapan15/Omni-IP-Scanner/pkg/oui"
	"github.com/sapan15/Omni-IP-Scanner/pkg/store"
)

func main() {
	log := logger.New()

	conf, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	repo, err := store.NewSQLiteStore(conf.DBPath)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open state database")
	}

	defer repo.Close()

	state, err := repo.LoadState()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load saved state")
	}

	registry := device.NewRegistry(func(devices []device.Device) error {
		return repo.SaveState(&store.State{Devices: devices})
	})

	registry.SetAll(state.Devices)

	userNet, err := network.NewDefaultNetwork()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to find default network")
	}

	vendorRepo, err := oui.GetDefaultVendorRepo()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize vendor repo")
	}

	aiClient := ai.NewHTTPClient(
		conf.AIBaseURL,
		conf.AIModel,
		conf.AIKey,
		ai.WithRateLimit(conf.AIRate),
		ai.WithHTTPTransport(&http.Client{Timeout: conf.AITimeout}),
	)

	runner := core.New()

	cmd, err := cli.Root(
		runner,
		conf,
		registry,
		repo,
		aiClient,
		userNet,
		vendorRepo,
	)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cli")
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command encountered an error")
	}
}
