//go:build tinygo && !baremetal

package hal

type tinyGoHostHAL struct {
	fb *memFramebuffer
	t  *tinyGoTime
}

// New returns a HAL for TinyGo host targets such as linux or wasm, where
// there is no panel or keyboard.
func New() HAL {
	return &tinyGoHostHAL{
		fb: newMemFramebuffer(DefaultWidth, DefaultHeight),
		t:  newTinyGoTime(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return printlnLogger{} }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoInput{kbd: nullKeyboard{}} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type printlnLogger struct{}

func (printlnLogger) WriteLineString(s string) { println(s) }
func (printlnLogger) WriteLineBytes(b []byte)  { println(string(b)) }
