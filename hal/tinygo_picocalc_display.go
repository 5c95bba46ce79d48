//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

var errPanelBuffer = errors.New("display: framebuffer smaller than panel window")

// panelStep is one controller command with its parameters and settle time.
type panelStep struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// ILI9488 bring-up for the PicoCalc: RGB565, inverted, mirrored for the
// board wiring with BGR order.
var ili9488Init = []panelStep{
	{cmd: 0xC0, data: []byte{0x17, 0x15}},             // PWCTRL1
	{cmd: 0xC1, data: []byte{0x41}},                   // PWCTRL2
	{cmd: 0xC5, data: []byte{0x00, 0x12, 0x80, 0x40}}, // VMCTRL
	{cmd: 0x3A, data: []byte{0x55}},                   // COLMOD 16bpp
	{cmd: 0xB1, data: []byte{0xA0, 0x11}},             // FRMCTRL1
	{cmd: 0xB6, data: []byte{0x02, 0x22, 0x27}},       // DISCTRL
	{cmd: 0x21},                                       // INVON
	{cmd: 0x36, data: []byte{0x40 | 0x04 | 0x08}},     // MADCTL
	{cmd: 0x11, delay: 120 * time.Millisecond},        // SLPOUT
	{cmd: 0x29},                                       // DISPON
}

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	// tx holds byte-swapped pixels; its length is even.
	tx []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("display: SPI1 unavailable")
	}
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	d := &ili9488{
		spi: *machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		tx:  make([]byte, 4096),
	}
	for _, p := range []machine.Pin{d.cs, d.dc, d.rst} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range ili9488Init {
		d.command(s.cmd, s.data...)
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}
	return d, nil
}

func (d *ili9488) command(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) window(w, h int) {
	x1, y1 := uint16(w-1), uint16(h-1)
	d.command(0x2A, 0, 0, byte(x1>>8), byte(x1)) // CASET
	d.command(0x2B, 0, 0, byte(y1>>8), byte(y1)) // PASET
	d.command(0x2C)                              // RAMWR
}

// flush streams a little-endian RGB565 buffer to the panel, swapping each
// pixel to the big-endian order the controller reads.
func (d *ili9488) flush(buf []byte, w, h int) error {
	total := w * h * 2
	if w <= 0 || h <= 0 || len(buf) < total {
		return errPanelBuffer
	}
	d.window(w, h)

	d.cs.Low()
	d.dc.High()
	for off := 0; off < total; {
		n := min(len(d.tx), total-off)
		src := buf[off : off+n]
		for i := 0; i+1 < n; i += 2 {
			d.tx[i], d.tx[i+1] = src[i+1], src[i]
		}
		d.spi.Tx(d.tx[:n], nil)
		off += n
	}
	d.cs.High()
	return nil
}
