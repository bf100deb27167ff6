// This file is part of GopherFC.
//
// GopherFC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherFC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherFC.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"fmt"
	"strings"

	"github.com/gopherfc/gopherfc/hardware/cartridge"
	"github.com/gopherfc/gopherfc/hardware/controller"
	"github.com/gopherfc/gopherfc/hardware/cpu"
	"github.com/gopherfc/gopherfc/hardware/input"
	"github.com/gopherfc/gopherfc/hardware/memory/memorymap"
	"github.com/gopherfc/gopherfc/hardware/ppu"
	"github.com/gopherfc/gopherfc/logger"
)

// the number of PPU clocks for every CPU clock.
const clocksPerCPU = 3

// dma is the state of an OAM DMA transfer.
type dma struct {
	page uint8
	addr uint8
	data uint8

	// transfer is in progress
	transfer bool

	// the transfer is waiting to align with the CPU clock
	dummy bool
}

// Bus is the main container for the emulated components of the NES.
type Bus struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	// work RAM. mirrored four times in the first 8k of the address space
	RAM [2048]uint8

	Controllers [input.NumPlayers]*controller.Controller
	Input       *input.Input

	dma dma

	// incremented on every call to Clock()
	clockCounter uint64
}

// NewBus creates a new Bus and everything associated with the hardware. The
// ejected cartridge is inserted.
func NewBus() *Bus {
	bus := &Bus{
		PPU: ppu.NewPPU(),
		Controllers: [input.NumPlayers]*controller.Controller{
			&controller.Controller{},
			&controller.Controller{},
		},
		dma: dma{dummy: true},
	}
	bus.CPU = cpu.NewCPU(bus)
	bus.Input = input.NewInput(bus, bus.Controllers)
	bus.InsertCartridge(nil)
	return bus
}

func (bus *Bus) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "clock=%d\n", bus.clockCounter)
	fmt.Fprintf(&s, "cpu: %s\n", bus.CPU)
	fmt.Fprintf(&s, "ppu: %s\n", bus.PPU)
	fmt.Fprintf(&s, "cart: %s", bus.Cart)
	return s.String()
}

// InsertCartridge connects the cartridge to the CPU and PPU address spaces.
// A nil cartridge is the same as inserting the ejected cartridge.
//
// The bus should be reset after inserting a cartridge.
func (bus *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	if cart == nil {
		cart = cartridge.NewEjected()
	}
	bus.Cart = cart
	bus.PPU.ConnectCartridge(cart)
	logger.Logf(logger.Allow, "bus", "inserted cartridge: %s", cart)
}

// Reset the console. Work RAM is not changed.
func (bus *Bus) Reset() {
	bus.Cart.Reset()
	bus.CPU.Reset()
	bus.PPU.Reset()
	bus.dma = dma{dummy: true}
	bus.clockCounter = 0
	logger.Log(logger.Allow, "bus", "reset")
}

// ClockCount returns the number of master clocks since the last reset.
func (bus *Bus) ClockCount() uint64 {
	return bus.clockCounter
}

// FrameNumber implements the input.FrameCounter interface.
func (bus *Bus) FrameNumber() int {
	return bus.PPU.FrameNum
}

// DMAActive returns true if an OAM DMA transfer is in progress.
func (bus *Bus) DMAActive() bool {
	return bus.dma.transfer
}

// Read implements the cpubus.Memory interface.
func (bus *Bus) Read(address uint16) uint8 {
	return bus.read(address, false)
}

// Peek implements the cpubus.Memory interface.
func (bus *Bus) Peek(address uint16) uint8 {
	return bus.read(address, true)
}

func (bus *Bus) read(address uint16, readOnly bool) uint8 {
	// the cartridge has first refusal on every address
	if ok, data := bus.Cart.CPURead(address); ok {
		return data
	}

	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return bus.RAM[address]

	case memorymap.PPU:
		return bus.PPU.CPURead(address, readOnly)

	case memorymap.IO:
		switch address {
		case memorymap.Controller1, memorymap.Controller2:
			c := bus.Controllers[address&0x0001]
			if readOnly {
				return c.Peek()
			}
			return c.Read()
		}
	}

	return 0
}

// Write implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint16, data uint8) {
	if bus.Cart.CPUWrite(address, data) {
		return
	}

	address, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		bus.RAM[address] = data

	case memorymap.PPU:
		bus.PPU.CPUWrite(address, data)

	case memorymap.IO:
		switch address {
		case memorymap.OAMDMA:
			bus.dma.page = data
			bus.dma.addr = 0
			bus.dma.transfer = true

		case memorymap.Controller1:
			// the strobe line is shared by both controllers
			bus.Controllers[0].Write(data)
			bus.Controllers[1].Write(data)

		case memorymap.Controller2:
			bus.Controllers[1].Write(data)
		}
	}
}

// Clock advances the console by one master clock. The PPU is clocked every
// time and the CPU every third time. While a DMA transfer is in progress the
// CPU is suspended and the transfer advances instead.
func (bus *Bus) Clock() {
	bus.PPU.Clock()

	if bus.clockCounter%clocksPerCPU == 0 {
		if bus.dma.transfer {
			bus.stepDMA()
		} else {
			bus.CPU.Clock()
		}
	}

	if bus.PPU.NMI {
		bus.PPU.NMI = false
		bus.CPU.NMI()
	}

	if bus.Cart.IRQState() {
		bus.Cart.IRQClear()
		bus.CPU.IRQ()
	}

	bus.clockCounter++
}

// stepDMA advances the DMA transfer. Bytes are read on even clocks and
// written to OAM on odd clocks. The first step of a transfer waits for an odd
// clock.
func (bus *Bus) stepDMA() {
	if bus.dma.dummy {
		if bus.clockCounter%2 == 1 {
			bus.dma.dummy = false
		}
		return
	}

	if bus.clockCounter%2 == 0 {
		bus.dma.data = bus.Read(uint16(bus.dma.page)<<8 | uint16(bus.dma.addr))
		return
	}

	bus.PPU.WriteOAM(bus.dma.addr, bus.dma.data)
	bus.dma.addr++

	if bus.dma.addr == 0 {
		bus.dma.transfer = false
		bus.dma.dummy = true
	}
}
