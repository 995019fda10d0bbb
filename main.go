package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/jyane/nes6502/nes"
)

var (
	path         = flag.String("path", "./testdata/nestest.nes", "path to NES ROM file")
	pc           = flag.String("pc", "", "start address in hex instead of the reset vector, e.g. C000 for nestest")
	steps        = flag.Int("steps", 0, "number of steps to run, 0 runs until the CPU jams")
	trace        = flag.Bool("trace", false, "print a nestest style trace line before each step")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to file")
	debug        = flag.Bool("debug", false, "run as debug mode")
	strict       = flag.Bool("strict", false, "fail on undefined opcodes instead of running them as NOP")
	noUnofficial = flag.Bool("no-unofficial", false, "treat unofficial opcodes as undefined")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func run(console *nes.Console) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for i := 0; *steps == 0 || i < *steps; i++ {
		if console.CPU.Jammed() {
			return nil
		}
		if *trace {
			fmt.Fprintln(out, console.CPU.Trace(console.Bus))
		}
		if _, err := console.Step(); err != nil {
			return err
		}
	}
	return nil
}

func debugLoop(console *nes.Console) error {
	d := nes.NewDebugConsole(console, os.Stdin, os.Stdout)
	for {
		if _, err := d.Step(); err != nil {
			if errors.Is(err, nes.ErrQuit) {
				return nil
			}
			fmt.Println(err)
		}
	}
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("Failed to read: " + *path)
	}
	console, err := nes.NewConsole(buf, nes.Config{DisableUnofficial: *noUnofficial, Strict: *strict})
	if err != nil {
		glog.Fatalln("Failed to initiate Console: ", err)
	}
	console.Reset()
	if *pc != "" {
		address, err := strconv.ParseUint(*pc, 16, 16)
		if err != nil {
			glog.Fatalln("Invalid start address: ", err)
		}
		console.CPU.SetPC(uint16(address))
	}
	if *debug {
		err = debugLoop(console)
	} else {
		err = run(console)
	}
	if err != nil {
		glog.Errorln("Stopped: ", err)
	}
	s := console.CPU.Snapshot()
	glog.Infof("Final state: PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x, P=0x%02x, cycles=%d",
		s.PC, s.A, s.X, s.Y, s.SP, s.P, s.Cycles)
	glog.Flush()
}
