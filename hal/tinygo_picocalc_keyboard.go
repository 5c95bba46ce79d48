//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	kbdStatePressed  byte = 0x01
	kbdStateHeld     byte = 0x02
	kbdStateReleased byte = 0x03
)

// Special key codes reported by the keyboard MCU.
var picoCalcKeys = map[byte]KeyCode{
	0xB1: KeyEscape,
	0xD2: KeyHome,
	0xB4: KeyLeft,
	0xB7: KeyRight,
	0xB5: KeyUp,
	0xB6: KeyDown,
	'\r': KeyEnter,
	'\n': KeyEnter,
}

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	// I2C1 is the PicoCalc wiring; some targets only expose I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}
			k := &i2cKeyboard{i2c: bus, write: [1]byte{picoCalcKbdCmd}}
			// The keyboard MCU is slow to answer right after boot.
			for i := 0; i < 50; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, errors.New("keyboard: I2C unavailable")
}

// readEvent polls one FIFO entry. Held reports and modifiers are dropped.
func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	state, code := k.read[0], k.read[1]
	if code == 0 {
		return KeyEvent{}, false
	}
	switch state {
	case kbdStatePressed, kbdStateReleased:
	default:
		return KeyEvent{}, false
	}
	press := state == kbdStatePressed

	if kc, ok := picoCalcKeys[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	if !press || code >= 0x80 {
		return KeyEvent{}, false
	}
	return KeyEvent{Press: true, Rune: rune(code)}, true
}
