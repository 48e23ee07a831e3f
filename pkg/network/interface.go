// SPDX-License-Identifier: GPL-3.0-or-later

package network

import "net"

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . Network

// Network provides read-only info about the local network. It is only
// consulted to pick a plausible subnet for fabricated devices, never to
// probe anything.
type Network interface {
	Hostname() string
	Interface() *net.Interface
	IPNet() *net.IPNet
	Gateway() net.IP
	UserIP() net.IP
	Cidr() string
}
