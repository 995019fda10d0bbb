package integration

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/jyane/nes6502/nes"
)

const (
	nestestROM = "../testdata/nestest.nes"
	nestestLog = "../testdata/nestest.log"
)

var (
	pcRe  = regexp.MustCompile("^[A-Z0-9]{4}")
	aRe   = regexp.MustCompile("A:([A-Z0-9]*)")
	xRe   = regexp.MustCompile("X:([A-Z0-9]*)")
	yRe   = regexp.MustCompile("Y:([A-Z0-9]*)")
	pRe   = regexp.MustCompile("P:([A-Z0-9]*)")
	spRe  = regexp.MustCompile("SP:([A-Z0-9]*)")
	cycRe = regexp.MustCompile("CYC:(\\d*)")
)

// newNestestConsole loads nestest and starts it at 0xC000, the automated
// mode which runs without a PPU.
func newNestestConsole(t *testing.T) *nes.Console {
	t.Helper()
	b, err := ioutil.ReadFile(nestestROM)
	if os.IsNotExist(err) {
		t.Skipf("%s is not found", nestestROM)
	}
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	console, err := nes.NewConsole(b, nes.Config{})
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	console.Reset()
	console.CPU.SetPC(0xC000)
	return console
}

func TestNestest(t *testing.T) {
	console := newNestestConsole(t)
	in, err := os.Open(nestestLog)
	if os.IsNotExist(err) {
		t.Skipf("%s is not found", nestestLog)
	}
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer in.Close()
	var wantCycles uint64
	var wantPC uint16
	var wantA, wantX, wantY, wantP, wantSP byte
	before := "initial state"
	scanner := bufio.NewScanner(in)
	cpu := console.CPU
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Sscanf(pcRe.FindString(line), "%x", &wantPC)
		fmt.Sscanf(aRe.FindStringSubmatch(line)[1], "%x", &wantA)
		fmt.Sscanf(xRe.FindStringSubmatch(line)[1], "%x", &wantX)
		fmt.Sscanf(yRe.FindStringSubmatch(line)[1], "%x", &wantY)
		fmt.Sscanf(pRe.FindStringSubmatch(line)[1], "%x", &wantP)
		fmt.Sscanf(spRe.FindStringSubmatch(line)[1], "%x", &wantSP)
		fmt.Sscanf(cycRe.FindStringSubmatch(line)[1], "%d", &wantCycles)
		if cpu.PC() != wantPC {
			t.Fatalf("after %q\ncpu.PC(): got=0x%04x, want=0x%04x", before, cpu.PC(), wantPC)
		}
		if cpu.A() != wantA {
			t.Fatalf("after %q\ncpu.A(): got=0x%02x, want=0x%02x", before, cpu.A(), wantA)
		}
		if cpu.X() != wantX {
			t.Fatalf("after %q\ncpu.X(): got=0x%02x, want=0x%02x", before, cpu.X(), wantX)
		}
		if cpu.Y() != wantY {
			t.Fatalf("after %q\ncpu.Y(): got=0x%02x, want=0x%02x", before, cpu.Y(), wantY)
		}
		if cpu.P() != wantP {
			t.Fatalf("after %q\ncpu.P(): got=0x%02x, want=0x%02x", before, cpu.P(), wantP)
		}
		if cpu.SP() != wantSP {
			t.Fatalf("after %q\ncpu.SP(): got=0x%02x, want=0x%02x", before, cpu.SP(), wantSP)
		}
		if cpu.Cycles() != wantCycles {
			t.Fatalf("after %q\ncpu.Cycles(): got=%d, want=%d", before, cpu.Cycles(), wantCycles)
		}
		if _, err := console.Step(); err != nil {
			t.Fatalf("Step at %q: %v", line, err)
		}
		before = line
	}
	// nestest reports failures of the official and unofficial tests at 0x02
	// and 0x03.
	if got := console.Bus.Peek(0x0002); got != 0 {
		t.Errorf("official tests: got=0x%02x, want=0x00", got)
	}
	if got := console.Bus.Peek(0x0003); got != 0 {
		t.Errorf("unofficial tests: got=0x%02x, want=0x00", got)
	}
}

// TestNestestTrace compares the address, the instruction bytes and the
// registers of the trace with the log, the log also annotates operands with
// memory values and has a PPU column.
func TestNestestTrace(t *testing.T) {
	console := newNestestConsole(t)
	in, err := os.Open(nestestLog)
	if os.IsNotExist(err) {
		t.Skipf("%s is not found", nestestLog)
	}
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer in.Close()
	ppuRe := regexp.MustCompile(` PPU:\s*\d+,\s*\d+`)
	scanner := bufio.NewScanner(in)
	for i := 0; i < 100 && scanner.Scan(); i++ {
		want := ppuRe.ReplaceAllString(scanner.Text(), "")
		got := console.CPU.Trace(console.Bus)
		if got[:16] != want[:16] {
			t.Fatalf("line %d, instruction:\ngot =%q\nwant=%q", i+1, got, want)
		}
		if g, w := got[strings.Index(got, "A:"):], want[strings.Index(want, "A:"):]; g != w {
			t.Fatalf("line %d, registers:\ngot =%q\nwant=%q", i+1, g, w)
		}
		if _, err := console.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}
