// Package flash carries one-shot status messages across a redirect,
// using the cookie session as the backing store.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

type Message struct {
	Severity string
	Text     string
}

func init() {
	// Cookie sessions serialize values with gob
	gob.Register(Message{})
}

// Set queues a message for the next rendered page.
func Set(c *gin.Context, severity, text string) {
	session := sessions.Default(c)
	session.AddFlash(Message{Severity: severity, Text: text})
	session.Save()
}

// Take returns queued messages and clears them from the session.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save()

	msgs := make([]Message, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
