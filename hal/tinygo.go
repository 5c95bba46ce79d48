//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	fb     *memFramebuffer
	t      *tinyGoTime
}

// New returns a bare Pico 2 HAL: UART logging and an offscreen framebuffer.
func New() HAL {
	return &tinyGoHAL{
		logger: &uartLogger{uart: openUART0()},
		fb:     newMemFramebuffer(DefaultWidth, DefaultHeight),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: nullKeyboard{}} }
func (h *tinyGoHAL) Time() Time       { return h.t }
