// controllers/notify.go
package controllers

import (
	"barberpos-backend/models"
	"barberpos-backend/services"
)

var notifier *services.NotificationService

// SetNotifier wires the notification relay in at startup. Handlers treat it
// as optional: a nil relay simply means no messages go out.
func SetNotifier(n *services.NotificationService) {
	notifier = n
}

func notify(ntype, title, body string, metadata map[string]interface{}) {
	if notifier == nil {
		return
	}
	notifier.Notify(ntype, title, body, models.JSONB(metadata))
}
