package conversation

import "net/url"

// Reply is the single outbound payload produced per event: plain text, or a
// structured card when Card is set.
type Reply struct {
	Text string
	Card *Card
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func cardReply(card Card) Reply {
	return Reply{Card: &card}
}

// Card is a platform-neutral bubble: an optional header title, body lines
// and footer buttons whose actions are postbacks.
type Card struct {
	AltText string
	Title   string
	Lines   []CardLine
	Buttons []Button
}

type CardLine struct {
	Text      string
	Muted     bool
	Separator bool
}

type Button struct {
	Label   string
	Action  string
	Params  url.Values
	Primary bool
}

// Data encodes the button's postback payload as action=<name>[&param=value].
func (b Button) Data() string {
	values := url.Values{"action": {b.Action}}
	for key, vals := range b.Params {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	return values.Encode()
}
