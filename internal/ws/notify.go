package ws

import (
	"encoding/json"
	"time"

	"recruitly/internal/domain/application"
)

type ApplicationSubmittedEvent struct {
	Type          string `json:"type"`
	ApplicationID int64  `json:"application_id"`
	PersonID      int64  `json:"person_id"`
	Timestamp     string `json:"timestamp"`
}

// SubmissionNotifier adapts the hub to the workflow engine's Notifier
// interface. Broadcasting is fire-and-forget; a full buffer drops the event.
type SubmissionNotifier struct {
	hub *Hub
}

func NewSubmissionNotifier(hub *Hub) *SubmissionNotifier {
	return &SubmissionNotifier{hub: hub}
}

func (n *SubmissionNotifier) ApplicationSubmitted(app application.JobApplication) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationSubmittedEvent{
		Type:          "application_submitted",
		ApplicationID: app.ID,
		PersonID:      app.PersonID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
