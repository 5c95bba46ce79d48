//go:build tinygo && baremetal && picocalc

package hal

import "time"

type picoCalcHAL struct {
	logger *uartLogger
	fb     *memFramebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL: ILI9488 panel over SPI1, I2C keyboard, UART0
// log. Missing peripherals degrade to an offscreen buffer and no input.
func New() HAL {
	h := &picoCalcHAL{
		logger: &uartLogger{uart: openUART0()},
		fb:     newMemFramebuffer(DefaultWidth, DefaultHeight),
		kbd:    nullKeyboard{},
		t:      newTinyGoTime(),
	}
	if lcd, err := initILI9488(); err == nil {
		h.fb.flush = lcd.flush
	} else {
		h.logger.WriteLineString("display: " + err.Error())
	}
	if kb, err := newPicoCalcKeyboard(); err == nil {
		h.kbd = kb
	} else {
		h.logger.WriteLineString(err.Error())
	}
	return h
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	go func() {
		for {
			if ev, ok := kbd.readEvent(); ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return dev, nil
}
