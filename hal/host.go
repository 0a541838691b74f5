//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	hostWidth  = 320
	hostHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *MemFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation with a 320x240 framebuffer.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     NewFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
