package network_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sapan15/Omni-IP-Scanner/pkg/network"
)

func TestIncrementIP(t *testing.T) {
	t.Run("increments ip", func(st *testing.T) {
		ip := net.ParseIP("172.17.1.1")
		network.IncrementIP(ip)

		assert.Equal(st, "172.17.1.2", ip.String())
	})

	t.Run("rolls over the last octet", func(st *testing.T) {
		ip := net.ParseIP("172.17.1.255")
		network.IncrementIP(ip)

		assert.Equal(st, "172.17.2.0", ip.String())
	})
}
