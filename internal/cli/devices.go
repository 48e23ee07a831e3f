// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thediveo/netdb"

	"github.com/sapan15/Omni-IP-Scanner/internal/logger"
	"github.com/sapan15/Omni-IP-Scanner/internal/util"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
)

func newDevices(registry *device.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage the device inventory",
	}

	cmd.AddCommand(newDevicesAdd(registry))
	cmd.AddCommand(newDevicesRemove(registry))
	cmd.AddCommand(newDevicesShow(registry))

	return cmd
}

func newDevicesAdd(registry *device.Registry) *cobra.Command {
	var mac string
	var hostname string
	var vendorName string
	var notes string
	var ports []uint

	cmd := &cobra.Command{
		Use:   "add <ip>",
		Short: "Add a device by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := args[0]

			if net.ParseIP(ip) == nil {
				return fmt.Errorf("invalid ip address: %s", ip)
			}

			if mac != "" {
				if _, err := net.ParseMAC(mac); err != nil {
					return fmt.Errorf("invalid mac address: %s", mac)
				}
			}

			openPorts := []device.Port{}
			seen := []uint16{}

			for _, id := range ports {
				portID := uint16(id)

				if util.SliceIncludes(seen, portID) {
					continue
				}

				seen = append(seen, portID)

				service := "unknown"

				if svc := netdb.ServiceByPort(int(id), "tcp"); svc != nil {
					service = svc.Name
				}

				openPorts = append(openPorts, device.Port{
					ID:      portID,
					Service: service,
					Status:  device.PortOpen,
				})
			}

			slices.SortFunc(openPorts, func(p1, p2 device.Port) int {
				return int(p1.ID) - int(p2.ID)
			})

			now := time.Now()

			err := registry.Add(device.Device{
				ID:        uuid.NewString(),
				IP:        ip,
				MAC:       strings.ToUpper(mac),
				Hostname:  hostname,
				Vendor:    vendorName,
				Status:    device.StatusUnknown,
				OpenPorts: openPorts,
				FirstSeen: now,
				LastSeen:  now,
				Notes:     notes,
			})

			if errors.Is(err, device.ErrDeviceExists) {
				return fmt.Errorf("device %s is already in the inventory", ip)
			}

			if err != nil {
				return err
			}

			logger.New().Info().Str("ip", ip).Msg("device added")

			return nil
		},
	}

	cmd.Flags().StringVar(&mac, "mac", "", "device mac address")
	cmd.Flags().StringVar(&hostname, "hostname", "", "device hostname")
	cmd.Flags().StringVar(&vendorName, "vendor", "", "device vendor")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().UintSliceVar(&ports, "ports", []uint{}, "open ports")

	return cmd
}

func newDevicesRemove(registry *device.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <ip>",
		Short: "Remove a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ip := args[0]

			if err := registry.Remove(ip); err != nil {
				return fmt.Errorf("failed to remove %s: %w", ip, err)
			}

			logger.New().Info().Str("ip", ip).Msg("device removed")

			return nil
		},
	}
}

func newDevicesShow(registry *device.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ip>",
		Short: "Show all details for one device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, ok := registry.Get(args[0])

			if !ok {
				return fmt.Errorf("no device at %s", args[0])
			}

			openPorts := util.MapSlice(dev.OpenPorts, func(p device.Port) string {
				return fmt.Sprintf("%s:%d", p.Service, p.ID)
			})

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "ip:         %s\n", dev.IP)
			fmt.Fprintf(out, "mac:        %s\n", dev.MAC)
			fmt.Fprintf(out, "hostname:   %s\n", dev.Hostname)
			fmt.Fprintf(out, "vendor:     %s\n", dev.Vendor)
			fmt.Fprintf(out, "status:     %s\n", dev.Status)
			fmt.Fprintf(out, "os guess:   %s\n", dev.OSGuess)
			fmt.Fprintf(out, "open ports: %s\n", strings.Join(openPorts, ", "))
			fmt.Fprintf(out, "first seen: %s\n", dev.FirstSeen.Format(time.RFC3339))
			fmt.Fprintf(out, "last seen:  %s\n", dev.LastSeen.Format(time.RFC3339))

			if dev.Notes != "" {
				fmt.Fprintf(out, "notes:      %s\n", dev.Notes)
			}

			return nil
		},
	}
}
