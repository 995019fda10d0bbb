package nes

// Reference:
//   https://www.nesdev.org/wiki/Standard_controller
//   https://www.nesdev.org/wiki/Controller_reading

// Button is a bit of the standard controller report, in the order it is
// shifted out.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a standard controller on $4016 or $4017.
// The harness has no input device, buttons are pressed by the caller.
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  bool
}

func NewController() *Controller {
	return &Controller{}
}

// Press sets the state of a button.
func (c *Controller) Press(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// peek returns the bit the next read shifts out.
// After the 8 buttons the port reads 1.
func (c *Controller) peek() byte {
	if c.strobe {
		return boolByte(c.buttons[ButtonA])
	}
	if c.index >= 8 {
		return 1
	}
	return boolByte(c.buttons[c.index])
}

func (c *Controller) read() byte {
	x := c.peek()
	if !c.strobe && c.index < 8 {
		c.index++
	}
	return x
}

// write writes the strobe bit, the report is reloaded while it is 1.
func (c *Controller) write(data byte) {
	c.strobe = data&1 == 1
	if c.strobe {
		c.index = 0
	}
}
