//go:build !linux

package mpris

import "github.com/hashicorp/go-hclog"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

func New(Player, Lookup, hclog.Logger) *Adapter { return &Adapter{} }

func (a *Adapter) Close() error { return nil }
