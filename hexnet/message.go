package hexnet

import "github.com/milk9111/bosshex/hex"

const (
	TypeHexState = "hex_state"
	TypeAnnounce = "announce"
)

// Message is the JSON envelope the authority sends to replicas.
type Message struct {
	Type         string            `json:"type"`
	Set          *hex.ActiveSet    `json:"set,omitempty"`
	Announcement *hex.Announcement `json:"announcement,omitempty"`
}
