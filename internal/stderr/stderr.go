//go:build !windows

// Package stderr redirects file descriptor 2 into the application log.
// The audio backend's C code (ALSA, oto) writes there directly, which would
// otherwise scribble over the terminal UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/hashicorp/go-hclog"
)

var (
	mu       sync.Mutex
	origFD   = -1
	pipeR    *os.File
	pipeW    *os.File
	finished chan struct{}
)

// Start redirects stderr to logger. Call it before the audio output is
// initialized. On error stderr is left untouched and the program can go on.
func Start(logger hclog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if pipeR != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	fd, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		_ = r.Close()
		_ = w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = syscall.Close(fd)
		_ = r.Close()
		_ = w.Close()
		return err
	}

	origFD, pipeR, pipeW = fd, r, w
	finished = make(chan struct{})
	go forward(r, logger, finished)
	return nil
}

func forward(r *os.File, logger hclog.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("stderr", "line", line)
		}
	}
}

// WriteOriginal writes msg to the real stderr, bypassing the redirect.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origFD
	mu.Unlock()
	if fd < 0 {
		fd = int(os.Stderr.Fd())
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores stderr and waits for buffered lines to reach the log.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if pipeR == nil {
		return
	}

	_ = syscall.Dup2(origFD, int(os.Stderr.Fd()))
	_ = syscall.Close(origFD)
	_ = pipeW.Close()
	<-finished
	_ = pipeR.Close()

	origFD, pipeR, pipeW = -1, nil, nil
}
