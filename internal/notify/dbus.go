//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
	"github.com/hashicorp/go-hclog"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	appName   = "Serein"
	desktopID = "serein"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without a session bus it returns a
// notifier that silently does nothing.
func New(logger hclog.Logger) Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		if logger != nil {
			logger.Debug("desktop notifications disabled", "error", err)
		}
		return stubNotifier{}
	}
	return &dbusNotifier{obj: conn.Object(busName, busPath)}
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopID),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout)
	var id uint32
	err := n.obj.Call(busName+".Notify", 0,
		appName, notif.ReplacesID, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints, notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(busName+".CloseNotification", 0, id).Err
}

type stubNotifier struct{}

func (stubNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(uint32) error { return nil }
