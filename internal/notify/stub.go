//go:build !linux

package notify

import "github.com/hashicorp/go-hclog"

type stubNotifier struct{}

// New returns a no-op notifier on non-Linux platforms.
func New(hclog.Logger) Notifier { return stubNotifier{} }

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
