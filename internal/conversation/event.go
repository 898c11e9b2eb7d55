// Package conversation classifies normalized inbound chat events and turns
// them into replies, driving the per-user order intake flow. It knows
// nothing about the message platform; the transport adapter owns wire
// formats on both sides.
package conversation

import "net/url"

type EventKind string

const (
	KindText     EventKind = "text"
	KindPostback EventKind = "postback"
)

// Event is the normalized inbound shape the core consumes: a free-text
// message or a button postback, attributed to a platform user.
type Event struct {
	Kind       EventKind
	UserID     string
	ReplyToken string

	// Text carries the message body for KindText.
	Text string

	// Data carries the decoded postback payload for KindPostback.
	Data url.Values
}
