// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package memory

import (
	"github.com/pkg/errors"

	"github.com/db47h/hwmem"
)

// ErrAddressRange is returned by CheckAddress for addresses that do not fit
// a unit's address bus.
//
var ErrAddressRange = errors.New("address out of range")

// Driver drives a Unit with numeric addresses and values and counts clock
// cycles.
//
type Driver struct {
	u     Unit
	ticks uint
}

// NewDriver returns a new driver for u.
//
func NewDriver(u Unit) *Driver {
	return &Driver{u: u}
}

// Unit returns the driven unit.
//
func (d *Driver) Unit() Unit { return d.u }

// Ticks returns the number of clock cycles run so far.
//
func (d *Driver) Ticks() uint { return d.ticks }

// Words returns the word count of the driven unit.
//
func (d *Driver) Words() int { return d.u.Words() }

// CheckAddress returns an error wrapping ErrAddressRange if addr does not fit
// the unit's address bus.
//
func (d *Driver) CheckAddress(addr uint) error {
	if addr >= uint(d.u.Words()) {
		return errors.Wrapf(ErrAddressRange, "address %d, unit has %d words", addr, d.u.Words())
	}
	return nil
}

// Tick runs one clock cycle of the unit and returns its output. Tick panics
// with an *hwmem.InvariantError if addr is out of range.
//
func (d *Driver) Tick(in uint16, addr uint, load bool) uint16 {
	if err := d.CheckAddress(addr); err != nil {
		hwmem.Invariant("Driver", "%v", err)
	}
	d.ticks++
	return d.u.Tick(hwmem.FromUint16(in), hwmem.Address(addr, d.u.AddressBits()), hwmem.Bit(load)).Uint16()
}

// Write stores v at addr and returns the value read back during the same
// cycle.
//
func (d *Driver) Write(addr uint, v uint16) uint16 {
	return d.Tick(v, addr, true)
}

// Read returns the value stored at addr. It runs a clock cycle with load
// deasserted.
//
func (d *Driver) Read(addr uint) uint16 {
	return d.Tick(0, addr, false)
}
