package wgpu

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"
)

// ErrNoGPU is returned when no suitable GPU adapter is available.
var ErrNoGPU = errors.New("wgpu: no suitable GPU adapter found")

// GPUInfo describes the adapter a device was opened on.
type GPUInfo struct {
	Name       string
	Vendor     string
	DeviceType types.DeviceType
	Backend    types.Backend
	Driver     string
}

func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Device owns the GPU resources needed to present annotation batches:
// instance, adapter, logical device, and command queue.
//
// A Device must be opened with Open before use and released with Close.
type Device struct {
	mu sync.RWMutex

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	info *GPUInfo

	opened bool
}

// NewDevice creates a GPU device wrapper.
// The device must be opened with Open() before use.
func NewDevice() *Device {
	return &Device{}
}

// Open creates the GPU resources: instance, adapter, logical device, and
// command queue, in that order.
//
// Open is idempotent; calling it on an already open device is a no-op.
func (d *Device) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opened {
		return nil
	}

	d.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := d.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	d.adapter = adapterID
	d.info = adapterInfo(adapterID)

	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:          "ink-wgpu-device",
		RequiredLimits: types.DefaultLimits(),
	})
	if err != nil {
		return fmt.Errorf("device creation failed: %w", err)
	}
	d.device = deviceID

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		if dropErr := core.DeviceDrop(deviceID); dropErr != nil {
			log.Printf("wgpu: error releasing device: %v", dropErr)
		}
		return fmt.Errorf("queue retrieval failed: %w", err)
	}
	d.queue = queueID

	d.opened = true
	return nil
}

// Close releases all GPU resources.
// The device should not be used after Close is called.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.opened {
		return
	}

	// Release in reverse order of creation. The queue is released
	// when the device is dropped.
	if !d.device.IsZero() {
		if err := core.DeviceDrop(d.device); err != nil {
			log.Printf("wgpu: error releasing device: %v", err)
		}
		d.device = core.DeviceID{}
	}

	if !d.adapter.IsZero() {
		if err := core.AdapterDrop(d.adapter); err != nil {
			log.Printf("wgpu: error releasing adapter: %v", err)
		}
		d.adapter = core.AdapterID{}
	}

	d.instance = nil
	d.queue = core.QueueID{}
	d.info = nil
	d.opened = false
}

// Opened reports whether the device has been successfully opened.
func (d *Device) Opened() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.opened
}

// ID returns the logical device identifier.
func (d *Device) ID() core.DeviceID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.device
}

// Queue returns the command queue identifier.
func (d *Device) Queue() core.QueueID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.queue
}

// Info returns information about the selected GPU, or nil if the
// device is not open.
func (d *Device) Info() *GPUInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.info
}

// adapterInfo queries and logs the selected adapter. A query failure is not
// fatal to Open; it only costs the log line and the Info accessor.
func adapterInfo(adapterID core.AdapterID) *GPUInfo {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		log.Printf("wgpu: failed to get GPU info: %v", err)
		return nil
	}

	g := &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
	log.Printf("wgpu: GPU: %s", g)
	if g.Driver != "" {
		log.Printf("wgpu: Driver: %s", g.Driver)
	}
	return g
}
