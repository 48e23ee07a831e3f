// SPDX-License-Identifier: GPL-3.0-or-later

package device

import (
	"bytes"
	"errors"
	"net"
	"slices"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// ErrDeviceExists returned when adding a device whose IP is already present
var ErrDeviceExists = errors.New("device with this ip already exists")

// ErrDeviceNotFound returned when the requested IP is not in the registry
var ErrDeviceNotFound = errors.New("device not found")

// Persister is invoked synchronously after every registry mutation with a
// snapshot of all devices. The whole inventory is always written at once.
type Persister func(devices []Device) error

// Registry is the in-memory device inventory keyed by IP
type Registry struct {
	devices cmap.ConcurrentMap[string, Device]
	persist Persister
}

// NewRegistry returns an empty registry. A nil persister disables saving.
func NewRegistry(persist Persister) *Registry {
	if persist == nil {
		persist = func([]Device) error { return nil }
	}

	return &Registry{
		devices: cmap.New[Device](),
		persist: persist,
	}
}

// Add inserts a device, rejecting duplicate IPs
func (r *Registry) Add(d Device) error {
	if ok := r.devices.SetIfAbsent(d.IP, d); !ok {
		return ErrDeviceExists
	}

	return r.persist(r.Snapshot())
}

// Upsert inserts or replaces the device at its IP
func (r *Registry) Upsert(d Device) error {
	r.devices.Set(d.IP, d)

	return r.persist(r.Snapshot())
}

// Remove deletes the device at the given IP
func (r *Registry) Remove(ip string) error {
	if _, ok := r.devices.Get(ip); !ok {
		return ErrDeviceNotFound
	}

	r.devices.Remove(ip)

	return r.persist(r.Snapshot())
}

// Get returns the device at the given IP
func (r *Registry) Get(ip string) (Device, bool) {
	return r.devices.Get(ip)
}

// Len returns the number of devices
func (r *Registry) Len() int {
	return r.devices.Count()
}

// List returns all devices sorted by IP
func (r *Registry) List() []Device {
	devices := []Device{}

	for item := range r.devices.IterBuffered() {
		devices = append(devices, item.Val)
	}

	slices.SortFunc(devices, func(d1, d2 Device) int {
		return bytes.Compare(net.ParseIP(d1.IP), net.ParseIP(d2.IP))
	})

	return devices
}

// Snapshot returns a deep copy of the inventory sorted by IP. The
// persister receives snapshots so saved state never aliases port
// slices still held by the registry.
func (r *Registry) Snapshot() []Device {
	devices := r.List()

	for i := range devices {
		ports := make([]Port, len(devices[i].OpenPorts))
		copy(ports, devices[i].OpenPorts)
		devices[i].OpenPorts = ports
	}

	return devices
}

// SetAll replaces the registry contents without invoking the persister,
// used when loading a previously saved snapshot
func (r *Registry) SetAll(devices []Device) {
	r.devices.Clear()

	for _, d := range devices {
		r.devices.Set(d.IP, d)
	}
}

// Clear removes all devices
func (r *Registry) Clear() error {
	r.devices.Clear()

	return r.persist(r.Snapshot())
}
