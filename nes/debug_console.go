package nes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrQuit is returned by DebugConsole.Step on the quit command.
var ErrQuit = errors.New("quit")

var stepArgRe = regexp.MustCompile("^([0-9]+)([ds]?)$")

// DebugConsole a NES console for debugging, you can execute some commands through stdio.
// commands:
//   s [N|Nd|Ns]:
//     execute step(s). Nd prints the registers after each step, Ns runs
//     N seconds worth of cycles.
//   p [c|stack]:
//     print.
//   t:
//     print the next instruction in the trace format.
//   br 0xADDR:
//     set a break point.
//   n, i:
//     raise NMI, toggle the IRQ line.
//   r:
//     reset.
//   q:
//     quit.
type DebugConsole struct {
	*Console
	cycles      uint64
	breakpoints []uint16
	irq         bool
	in          *bufio.Reader
	out         io.Writer
	prompt      bool
}

// NewDebugConsole creates a debugger reading commands from in.
// The prompt is printed only when in is a terminal.
func NewDebugConsole(console *Console, in io.Reader, out io.Writer) *DebugConsole {
	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = term.IsTerminal(int(f.Fd()))
	}
	return &DebugConsole{Console: console, in: bufio.NewReader(in), out: out, prompt: prompt}
}

func (c *DebugConsole) Reset() {
	c.Console.Reset()
}

func (c *DebugConsole) step() (int, error) {
	cycles, err := c.Console.Step()
	c.cycles += uint64(cycles)
	return cycles, err
}

func (c *DebugConsole) printstack() {
	for i := 0; i < 256; i++ {
		idx := uint16(0x100 | i)
		if i%16 == 0 {
			fmt.Fprintf(c.out, "\n0x%04x:", idx)
		}
		fmt.Fprintf(c.out, " %02x", c.Bus.Peek(idx))
	}
	fmt.Fprintln(c.out)
}

func (c *DebugConsole) basePrint() {
	fmt.Fprintln(c.out, "--------------------------------------------------")
	fmt.Fprintf(c.out, "Executed cycles: %d\n", c.cycles)
	fmt.Fprintln(c.out, "Last: "+c.CPU.LastExecution())
	fmt.Fprintf(c.out, "CPU:  PC=0x%04x, A=0x%02x, X=0x%02x, Y=0x%02x, S=0x%02x, P=0x%02x, pending=%v\n",
		c.CPU.PC(), c.CPU.A(), c.CPU.X(), c.CPU.Y(), c.CPU.SP(), c.CPU.P(), c.CPU.Pending())
}

func (c *DebugConsole) printCommand(args []string) {
	if len(args) < 2 {
		c.basePrint()
		return
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Fprintf(c.out, "%+v\n", c.CPU.Snapshot())
	case "s", "stack":
		c.printstack()
	}
}

func (c *DebugConsole) checkBreak() bool {
	for _, b := range c.breakpoints {
		if b == c.CPU.PC() {
			fmt.Fprintf(c.out, "Break at: 0x%04x\n", b)
			return true
		}
	}
	return false
}

func (c *DebugConsole) stepCommand(args []string) (int, error) {
	if len(args) < 2 {
		return c.step()
	}
	m := stepArgRe.FindStringSubmatch(args[1])
	if m == nil {
		return 0, errors.Errorf("invalid step count: %s", args[1])
	}
	num, _ := strconv.Atoi(m[1])
	steps := num
	if m[2] == "s" {
		// s means seconds but this doesn't execute 1 sec, this executes CPUFrequency * num cycles.
		steps = CPUFrequency * num
	}
	cycles := 0
	for i := 0; i < steps; i++ {
		v, err := c.step()
		if m[2] == "d" {
			c.basePrint()
		}
		cycles += v
		if err != nil {
			return cycles, err
		}
		if m[2] == "s" {
			// counts cycles, not instructions
			i += v - 1
		}
		if c.checkBreak() {
			break
		}
	}
	return cycles, nil
}

func (c *DebugConsole) breakPointCommand(args []string) error {
	if len(args) < 2 {
		return errors.New("breakpoint needs an address")
	}
	address, err := strconv.ParseUint(strings.TrimPrefix(args[1], "0x"), 16, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid breakpoint %s", args[1])
	}
	c.breakpoints = append(c.breakpoints, uint16(address))
	return nil
}

// Step reads a command and executes it, returns the executed CPU cycles.
func (c *DebugConsole) Step() (int, error) {
	if c.prompt {
		fmt.Fprintf(c.out, "Debugger mode, 'q' to quit \n>> ")
	}
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return 0, ErrQuit
	}
	if err != nil && err != io.EOF {
		return 0, err
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return 0, nil
	}
	switch args[0] {
	case "p", "print":
		c.printCommand(args)
	case "t", "trace":
		fmt.Fprintln(c.out, c.CPU.Trace(c.Bus))
	case "s", "step":
		cycles, err := c.stepCommand(args)
		c.basePrint() // Print data before it die.
		if err != nil {
			return cycles, err
		}
		fmt.Fprintf(c.out, "Executed %d CPU cycles.\n", cycles)
		return cycles, nil
	case "br", "breakpoint":
		if err := c.breakPointCommand(args); err != nil {
			return 0, err
		}
	case "n", "nmi":
		c.CPU.TriggerNMI()
	case "i", "irq":
		c.irq = !c.irq
		c.CPU.SetIRQ(c.irq)
	case "r", "reset":
		c.Reset()
	case "q", "quit":
		fmt.Fprintln(c.out, "Quitting.")
		return 0, ErrQuit
	default:
		return 0, errors.Errorf("unknown command %s", args[0])
	}
	// step command was not executed.
	return 0, nil
}
