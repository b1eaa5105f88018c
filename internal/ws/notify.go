package ws

import (
	"encoding/json"
	"time"

	"job-portal/internal/domain/job"
)

type JobPostedEvent struct {
	Type        string    `json:"type"`
	JobID       string    `json:"job_id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	PostedAt    time.Time `json:"posted_at"`
}

// Notifier pushes catalog changes to connected clients. It satisfies the
// notifier dependency of the job usecase.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobPosted(j job.Job) {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobPostedEvent{
		Type:        "job_posted",
		JobID:       j.ID.String(),
		Title:       j.Title,
		CompanyName: j.CompanyName,
		Location:    j.Location,
		PostedAt:    j.CreatedAt.UTC(),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
