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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gopherfc/gopherfc/cartridgeloader"
	"github.com/gopherfc/gopherfc/curated"
	"github.com/gopherfc/gopherfc/debugger"
	"github.com/gopherfc/gopherfc/debugger/easyterm"
	"github.com/gopherfc/gopherfc/debugger/govern"
	"github.com/gopherfc/gopherfc/disassembly"
	"github.com/gopherfc/gopherfc/gui/sdlwindow"
	"github.com/gopherfc/gopherfc/hardware"
	"github.com/gopherfc/gopherfc/hardware/cartridge"
	"github.com/gopherfc/gopherfc/hardware/input"
	"github.com/gopherfc/gopherfc/logger"
	"github.com/gopherfc/gopherfc/modalflag"
	"github.com/gopherfc/gopherfc/performance"
	"github.com/gopherfc/gopherfc/playmode"
	"github.com/gopherfc/gopherfc/prefs"
	"github.com/gopherfc/gopherfc/resources"
	"github.com/gopherfc/gopherfc/settings"
	"github.com/gopherfc/gopherfc/statsview"
)

// SDL requires that window creation and event handling happens on the main
// thread. locking the main goroutine to the main thread in init() guarantees
// that main() runs there.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md, os.Stdout))
}

// launch the mode specified on the command line. returns the value to be used
// with os.Exit().
func launch(md *modalflag.Modes, output io.Writer) int {
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "PERFORMANCE", "TEST")

	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	prefsCmdLine := md.AddString("prefs", "", "preferences for this session (eg. \"display.preset::HD; playmode.fpscap::30\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *stats {
		stop := statsview.Launch(output, statsview.DefaultAddress)
		defer stop()
	}

	prefs.PushCommandLineStack(*prefsCmdLine)
	defer prefs.PopCommandLineStack()

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md, output)

	case "DEBUG":
		err = debug(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "TEST":
		err = testROM(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// setLogEcho sets the echo output of the central logger. the log is echoed to
// stderr so that it does not interfere with the output of the mode.
func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
}

// newBus creates a bus with the cartridge inserted and resets it. An empty
// filename results in the ejected cartridge being inserted. An unsupported
// cartridge is logged and replaced with the ejected cartridge. Any other error
// when loading the cartridge is returned.
func newBus(filename string) (*hardware.Bus, cartridgeloader.Loader, error) {
	bus := hardware.NewBus()

	if filename == "" {
		bus.Reset()
		return bus, cartridgeloader.Loader{}, nil
	}

	cartload := cartridgeloader.NewLoader(filename)
	cart, err := cartridge.NewCartridgeFromLoader(&cartload)
	if err != nil {
		if !curated.Is(err, cartridge.UnsupportedCartridge) {
			return nil, cartload, err
		}
		logger.Log(logger.Allow, "gopherfc", err)
		cart = nil
	}

	bus.InsertCartridge(cart)
	bus.Reset()

	return bus, cartload, nil
}

// attachInput sets up the recording or playback of controller input. The
// returned function should be called when the emulation has finished.
func attachInput(bus *hardware.Bus, record bool, playback string, cartload cartridgeloader.Loader, output io.Writer) (func() error, error) {
	if record && playback != "" {
		return nil, curated.Errorf("cannot record and playback input at the same time")
	}

	if playback != "" {
		d, err := os.ReadFile(playback)
		if err != nil {
			return nil, err
		}
		scr, err := input.ParseScript(string(d))
		if err != nil {
			return nil, err
		}
		err = bus.Input.AttachPlayback(scr)
		if err != nil {
			return nil, err
		}
		return func() error { return nil }, nil
	}

	if record {
		scr := &input.Script{}
		err := bus.Input.AttachRecorder(scr)
		if err != nil {
			return nil, err
		}
		return func() error {
			fn := resources.UniqueFilename("input", cartload.ShortName()) + ".txt"
			err := os.WriteFile(fn, []byte(scr.String()), 0644)
			if err != nil {
				return err
			}
			fmt.Fprintf(output, "! recording of %d events written to %s\n", scr.Len(), fn)
			return nil
		}, nil
	}

	return func() error { return nil }, nil
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	preset := md.AddString("preset", "", fmt.Sprintf("window preset: %s", strings.Join(settings.Names(), ", ")))
	record := md.AddBool("record", false, "record user input to a file")
	playback := md.AddString("playback", "", "playback user input from a file")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bus, cartload, err := newBus(md.GetArg(0))
	if err != nil {
		return err
	}

	inputEnd, err := attachInput(bus, *record, *playback, cartload, output)
	if err != nil {
		return err
	}

	set, err := settings.NewSettings()
	if err != nil {
		return err
	}
	if *preset != "" {
		err = set.SelectPreset(*preset)
		if err != nil {
			return err
		}
	}

	pst, err := set.Current()
	if err != nil {
		fmt.Fprintf(output, "* %v\n", err)
	}

	win, err := sdlwindow.NewWindow("GopherFC", pst, set.FPSCap.Get().(int), set.VSync.Get().(bool))
	if err != nil {
		return err
	}
	defer win.Destroy()

	err = playmode.Play(win, bus)
	if err != nil {
		return err
	}

	err = inputEnd()
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return set.Save()
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stderr")
	playback := md.AddString("playback", "", "playback user input from a file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bus, cartload, err := newBus(md.GetArg(0))
	if err != nil {
		return err
	}

	_, err = attachInput(bus, false, *playback, cartload, output)
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(bus, cartload.ShortName(), os.Stdin, output)
	if easyterm.IsTerminal(os.Stdin) {
		err = dbg.AttachTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	return dbg.Start()
}

// parse a hexadecimal address. a leading $ or 0x is optional.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("invalid address (%s)", s)
	}
	return uint16(v), nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	start := md.AddString("start", "8000", "start address of disassembly")
	end := md.AddString("end", "FFFF", "end address of disassembly")
	grep := md.AddString("grep", "", "only show lines containing the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		s, err := parseAddress(*start)
		if err != nil {
			return err
		}
		e, err := parseAddress(*end)
		if err != nil {
			return err
		}
		if e < s {
			return fmt.Errorf("end address is before start address")
		}

		bus, _, err := newBus(md.GetArg(0))
		if err != nil {
			return err
		}

		lst := disassembly.Disassemble(bus, s, e)
		if *grep != "" {
			lst.Grep(output, disassembly.GrepAll, *grep, false)
			return nil
		}
		return lst.Write(output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		bus, _, err := newBus(md.GetArg(0))
		if err != nil {
			return err
		}
		return performance.Check(output, prf, bus, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// testROM runs a test ROM without any display. test ROMs in the style of
// nestest report the result of the tests in RAM locations $02 and $03. a value
// of zero in both locations indicates success.
func testROM(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	start := md.AddString("start", "", "start address, overriding the reset vector (eg. C000 for nestest)")
	until := md.AddString("until", "", "stop when the program counter reaches the address")
	playback := md.AddString("playback", "", "playback user input from a file")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	bus, cartload, err := newBus(md.GetArg(0))
	if err != nil {
		return err
	}

	_, err = attachInput(bus, false, *playback, cartload, output)
	if err != nil {
		return err
	}

	if *start != "" {
		s, err := parseAddress(*start)
		if err != nil {
			return err
		}

		// complete the reset sequence before changing the program counter
		for !bus.CPU.Complete() {
			bus.Clock()
		}
		bus.CPU.PC.Load(s)
	}

	if *until == "" {
		err = bus.RunForFrameCount(*frames, nil)
	} else {
		var stop uint16
		stop, err = parseAddress(*until)
		if err != nil {
			return err
		}

		// the frames value is the limit on how long to wait for the address to
		// be reached
		limit := bus.FrameNumber() + *frames

		err = bus.Run(func() (govern.State, error) {
			if bus.CPU.PC.Value() == stop {
				return govern.Ending, nil
			}
			if bus.FrameNumber() >= limit {
				return govern.Ending, curated.Errorf("address $%04X not reached after %d frames", stop, *frames)
			}
			return govern.Running, nil
		})
	}
	if err != nil {
		return err
	}

	return reportTestROM(bus, cartload, output)
}

// reportTestROM prints the result bytes of a test ROM. An error is returned
// if either result byte is not zero.
func reportTestROM(bus *hardware.Bus, cartload cartridgeloader.Loader, output io.Writer) error {
	r2 := bus.Peek(0x0002)
	r3 := bus.Peek(0x0003)
	fmt.Fprintf(output, "%s: frame %d PC $%04X result $02=%02X $03=%02X\n",
		cartload.ShortName(), bus.FrameNumber(), bus.CPU.PC.Value(), r2, r3)
	if r2 != 0 || r3 != 0 {
		return curated.Errorf("test ROM reported failure ($02=%02X $03=%02X)", r2, r3)
	}
	return nil
}
