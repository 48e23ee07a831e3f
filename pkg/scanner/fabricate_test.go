// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"math/rand"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_network "github.com/sapan15/Omni-IP-Scanner/mock/network"
	mock_oui "github.com/sapan15/Omni-IP-Scanner/mock/oui"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/oui"
	"github.com/sapan15/Omni-IP-Scanner/pkg/scanner"
)

func TestRandomFabricator(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	_, mockIPNet, _ := net.ParseCIDR("192.168.1.0/24")

	mockUserIP := net.ParseIP("192.168.1.10")
	mockGateway := net.ParseIP("192.168.1.1")

	newMockNetwork := func() *mock_network.MockNetwork {
		mockNet := mock_network.NewMockNetwork(ctrl)

		mockNet.EXPECT().IPNet().AnyTimes().Return(mockIPNet)
		mockNet.EXPECT().UserIP().AnyTimes().Return(mockUserIP)
		mockNet.EXPECT().Gateway().AnyTimes().Return(mockGateway)

		return mockNet
	}

	t.Run("invents a device on the local subnet", func(st *testing.T) {
		vendorRepo := mock_oui.NewMockVendorRepo(ctrl)

		vendorRepo.EXPECT().Query(gomock.Any()).AnyTimes().
			Return(&oui.VendorResult{Name: "unknown"}, nil)

		fabricator := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 42)

		dev, err := fabricator.Fabricate()

		assert.NoError(st, err)

		ip := net.ParseIP(dev.IP)

		assert.NotNil(st, ip)
		assert.True(st, mockIPNet.Contains(ip))
		assert.False(st, ip.Equal(mockUserIP))
		assert.False(st, ip.Equal(mockGateway))

		_, err = net.ParseMAC(dev.MAC)

		assert.NoError(st, err)

		assert.NotEmpty(st, dev.ID)
		assert.NotEmpty(st, dev.Hostname)
		assert.NotEmpty(st, dev.Vendor)
		assert.Equal(st, device.StatusOnline, dev.Status)
		assert.False(st, dev.FirstSeen.IsZero())

		assert.GreaterOrEqual(st, len(dev.OpenPorts), 1)
		assert.LessOrEqual(st, len(dev.OpenPorts), 5)

		for i := 1; i < len(dev.OpenPorts); i++ {
			assert.Less(st, dev.OpenPorts[i-1].ID, dev.OpenPorts[i].ID)
			assert.Equal(st, device.PortOpen, dev.OpenPorts[i].Status)
		}
	})

	t.Run("prefers the vendor repo when it knows the prefix", func(st *testing.T) {
		vendorRepo := mock_oui.NewMockVendorRepo(ctrl)

		vendorRepo.EXPECT().Query(gomock.Any()).AnyTimes().
			Return(&oui.VendorResult{Name: "Tailored Vendor Co"}, nil)

		fabricator := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 42)

		dev, err := fabricator.Fabricate()

		assert.NoError(st, err)
		assert.Equal(st, "Tailored Vendor Co", dev.Vendor)
	})

	t.Run("is reproducible for the same seed", func(st *testing.T) {
		vendorRepo := mock_oui.NewMockVendorRepo(ctrl)

		vendorRepo.EXPECT().Query(gomock.Any()).AnyTimes().
			Return(&oui.VendorResult{Name: "unknown"}, nil)

		dev1, err := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 7).Fabricate()

		assert.NoError(st, err)

		dev2, err := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 7).Fabricate()

		assert.NoError(st, err)

		assert.Equal(st, dev1.IP, dev2.IP)
		assert.Equal(st, dev1.MAC, dev2.MAC)
		assert.Equal(st, dev1.Hostname, dev2.Hostname)
	})

	t.Run("can be reseeded through the scanner option", func(st *testing.T) {
		vendorRepo := mock_oui.NewMockVendorRepo(ctrl)

		vendorRepo.EXPECT().Query(gomock.Any()).AnyTimes().
			Return(&oui.VendorResult{Name: "unknown"}, nil)

		fab1 := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 0)
		scanner.NewSimScanner(fab1, scanner.WithRandSource(rand.NewSource(11)))

		dev1, err := fab1.Fabricate()

		assert.NoError(st, err)

		fab2 := scanner.NewRandomFabricator(newMockNetwork(), vendorRepo, 0)
		scanner.NewSimScanner(fab2, scanner.WithRandSource(rand.NewSource(11)))

		dev2, err := fab2.Fabricate()

		assert.NoError(st, err)

		assert.Equal(st, dev1.IP, dev2.IP)
		assert.Equal(st, dev1.MAC, dev2.MAC)
		assert.Equal(st, dev1.Hostname, dev2.Hostname)
	})
}
