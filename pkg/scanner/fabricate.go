// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"fmt"
	"math/rand"
	"net"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/thediveo/netdb"

	"github.com/sapan15/Omni-IP-Scanner/internal/util"
	"github.com/sapan15/Omni-IP-Scanner/pkg/device"
	"github.com/sapan15/Omni-IP-Scanner/pkg/network"
	"github.com/sapan15/Omni-IP-Scanner/pkg/oui"
)

// Fabricator produces one invented device per scan
type Fabricator interface {
	Fabricate() (*device.Device, error)
}

// real OUI prefixes so fabricated MACs resolve to believable vendors
// even without the IEEE registry on disk
var ouiPrefixes = []struct {
	prefix string
	vendor string
}{
	{"B8:27:EB", "Raspberry Pi Foundation"},
	{"F0:18:98", "Apple, Inc."},
	{"3C:5A:B4", "Google, Inc."},
	{"00:50:56", "VMware, Inc."},
	{"FC:FB:FB", "Cisco Systems, Inc"},
	{"D8:3A:DD", "Raspberry Pi Trading Ltd"},
	{"00:17:88", "Philips Lighting BV"},
	{"5C:CF:7F", "Espressif Inc."},
	{"AC:63:BE", "Amazon Technologies Inc."},
	{"00:0C:29", "VMware, Inc."},
}

var hostAdjectives = []string{
	"quiet", "amber", "brisk", "cobalt", "dusty", "eager", "frosty", "gilded",
}

var hostNouns = []string{
	"printer", "camera", "bridge", "kettle", "sensor", "console", "speaker", "hub",
}

// common ports sampled for fabricated devices
var commonPorts = []uint16{
	21, 22, 23, 53, 80, 110, 139, 143, 443, 445, 515, 631, 3306, 3389, 5000, 8080, 8443, 9100,
}

// RandomFabricator invents devices that look at home on the local subnet
type RandomFabricator struct {
	netInfo network.Network
	vendors oui.VendorRepo
	rnd     *rand.Rand
}

// NewRandomFabricator returns a RandomFabricator. A zero seed picks a
// time-based seed, any other value makes output reproducible.
func NewRandomFabricator(
	netInfo network.Network,
	vendors oui.VendorRepo,
	seed int64,
) *RandomFabricator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandomFabricator{
		netInfo: netInfo,
		vendors: vendors,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// SetRandSource reseeds the fabricator
func (f *RandomFabricator) SetRandSource(src rand.Source) {
	f.rnd = rand.New(src)
}

// Fabricate invents one device on the local subnet
func (f *RandomFabricator) Fabricate() (*device.Device, error) {
	ip, err := f.fabricateIP()

	if err != nil {
		return nil, err
	}

	mac, vendor := f.fabricateMAC()

	now := time.Now()

	return &device.Device{
		ID:        uuid.NewString(),
		IP:        ip,
		MAC:       mac,
		Hostname:  f.fabricateHostname(),
		Vendor:    vendor,
		Status:    device.StatusOnline,
		OpenPorts: f.fabricatePorts(),
		FirstSeen: now,
		LastSeen:  now,
	}, nil
}

// fabricateIP picks a host address on the user's subnet, avoiding the
// user's own address and the gateway
func (f *RandomFabricator) fabricateIP() (string, error) {
	ipnet := f.netInfo.IPNet()

	base := f.netInfo.UserIP().To4()

	if base == nil || ipnet == nil {
		return "", fmt.Errorf("no usable ipv4 network found")
	}

	candidate := make(net.IP, len(base))
	copy(candidate, base)

	for attempts := 0; attempts < 50; attempts++ {
		candidate[3] = byte(2 + f.rnd.Intn(253))

		// step off the user's own address or the gateway
		if candidate.Equal(f.netInfo.UserIP()) || candidate.Equal(f.netInfo.Gateway()) {
			network.IncrementIP(candidate)
		}

		if candidate.Equal(f.netInfo.UserIP()) || candidate.Equal(f.netInfo.Gateway()) {
			continue
		}

		if candidate[3] != 0 && candidate[3] != 255 && ipnet.Contains(candidate) {
			return candidate.String(), nil
		}
	}

	// tiny subnets may never satisfy the avoidance rules
	return candidate.String(), nil
}

func (f *RandomFabricator) fabricateMAC() (string, string) {
	entry := ouiPrefixes[f.rnd.Intn(len(ouiPrefixes))]

	mac := fmt.Sprintf(
		"%s:%02X:%02X:%02X",
		entry.prefix,
		f.rnd.Intn(256),
		f.rnd.Intn(256),
		f.rnd.Intn(256),
	)

	vendor := entry.vendor

	if hwAddr, err := net.ParseMAC(mac); err == nil && f.vendors != nil {
		if result, err := f.vendors.Query(hwAddr); err == nil && result.Name != "unknown" {
			vendor = result.Name
		}
	}

	return mac, vendor
}

func (f *RandomFabricator) fabricateHostname() string {
	return fmt.Sprintf(
		"%s-%s",
		hostAdjectives[f.rnd.Intn(len(hostAdjectives))],
		hostNouns[f.rnd.Intn(len(hostNouns))],
	)
}

func (f *RandomFabricator) fabricatePorts() []device.Port {
	count := 1 + f.rnd.Intn(5)

	ports := []device.Port{}

	for len(ports) < count {
		id := commonPorts[f.rnd.Intn(len(commonPorts))]

		taken := util.SliceIncludesFunc(ports, func(p device.Port, _ int) bool {
			return p.ID == id
		})

		if taken {
			continue
		}

		service := "unknown"

		if svc := netdb.ServiceByPort(int(id), "tcp"); svc != nil {
			service = svc.Name
		}

		ports = append(ports, device.Port{
			ID:      id,
			Service: service,
			Status:  device.PortOpen,
		})
	}

	slices.SortFunc(ports, func(p1, p2 device.Port) int {
		return int(p1.ID) - int(p2.ID)
	})

	return ports
}
