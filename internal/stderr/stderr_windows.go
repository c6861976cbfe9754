//go:build windows

// Package stderr is a no-op on Windows, where the audio backend does not
// write to the console.
package stderr

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

func Start(hclog.Logger) error { return nil }

func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

func Stop() {}
