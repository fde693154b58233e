package notifier

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Event is the payload posted to the notification-email endpoint. The
// endpoint owns template rendering; this service only tags the record with
// an event type.
type Event struct {
	EventType string                 `json:"event_type"`
	Record    map[string]interface{} `json:"record"`
}

// Client posts lifecycle events to an external mailer endpoint. Dispatch is
// fire-and-forget: callers never wait on the result for correctness, and a
// failed delivery only logs.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      *logrus.Entry
}

func New(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		log:      logrus.WithField("component", "notifier"),
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool { return c != nil && c.endpoint != "" }

// Emit sends the event asynchronously. A nil client or missing endpoint is a
// no-op so services can emit unconditionally.
func (c *Client) Emit(eventType string, record map[string]interface{}) {
	if !c.Enabled() {
		return
	}
	go c.post(Event{EventType: eventType, Record: record})
}

func (c *Client) post(ev Event) {
	body, err := json.Marshal(ev)
	if err != nil {
		c.log.WithError(err).Warn("marshal event")
		return
	}
	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		c.log.WithError(err).Warn("build request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("event", ev.EventType).Warn("event dispatch failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(logrus.Fields{"event": ev.EventType, "status": resp.StatusCode}).
			Warn("event endpoint returned non-2xx")
	}
}
