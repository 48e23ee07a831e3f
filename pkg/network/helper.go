// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/jackpal/gateway"
)

// IncrementIP increments an IP address in place
func IncrementIP(ip net.IP) {
	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] > 0 {
			break
		}
	}
}

type networkInfo struct {
	hostname string
	gateway  net.IP
	userIP   net.IP
	ipnet    *net.IPNet
	iface    *net.Interface
	cidr     string
}

func getIPNetByIP(ip net.IP) (*net.Interface, *net.IPNet, error) {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				return &iface, ipnet, nil
			}
		}
	}

	return nil, nil, errors.New("failed to find IPNet")
}

func getDefaultNetworkInfo() (*networkInfo, error) {
	hostname, err := os.Hostname()

	if err != nil {
		return nil, err
	}

	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", gw.String()+":80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	foundIP := net.ParseIP(localAddr.IP.String())

	iface, ipnet, err := getIPNetByIP(foundIP)

	if err != nil {
		return nil, err
	}

	size, _ := ipnet.Mask.Size()

	return &networkInfo{
		hostname: hostname,
		gateway:  gw,
		userIP:   foundIP,
		ipnet:    ipnet,
		iface:    iface,
		cidr:     fmt.Sprintf("%s/%d", foundIP.Mask(ipnet.Mask), size),
	}, nil
}
