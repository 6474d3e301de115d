package ws

import (
	"encoding/json"
	"time"

	"career-connector/internal/domain/job"
)

const EventJobPosted = "job_posted"

type JobPostedEvent struct {
	Type      string `json:"type"`
	JobID     int64  `json:"job_id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Skills    string `json:"skills"`
	Timestamp string `json:"timestamp"`
}

// JobNotifier publishes postings to the live feed.
type JobNotifier struct {
	hub *Hub
	now func() time.Time
}

func NewJobNotifier(hub *Hub) *JobNotifier {
	return &JobNotifier{hub: hub, now: time.Now}
}

func (n *JobNotifier) NotifyJobPosted(p job.Posting) {
	if n == nil || n.hub == nil {
		return
	}
	evt := JobPostedEvent{
		Type:      EventJobPosted,
		JobID:     p.ID,
		Title:     p.Title,
		Location:  p.Location,
		Skills:    p.Skills,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
