package session

import (
	"encoding/json"

	"github.com/paceup/paceup/backend-go/internal/element"
)

type Message struct {
	Type      string          `json:"type"`
	ArticleID string          `json:"articleId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Layout sync: full element array on join, updates while editing,
	// save acknowledgements back to the editor.
	TypeLayoutSync   = "layout.sync"
	TypeLayoutUpdate = "layout.update"
	TypeLayoutSaved  = "layout.saved"

	// Read-only viewers of the same flyer
	TypeViewerJoin  = "viewer.join"
	TypeViewerLeave = "viewer.leave"
	TypeViewerState = "viewer.state"
)

// WelcomePayload is the first frame a client receives: its server-assigned
// session id and the client id echoed back.
type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
}

// LayoutPayload carries the full, current ordered element array, the
// same shape the editor's elements-changed callback emits.
type LayoutPayload struct {
	Elements []element.Element `json:"elements"`
}

// SavedPayload acknowledges a persisted revision.
type SavedPayload struct {
	Seq     int64 `json:"seq"`
	SavedAt int64 `json:"savedAt"`
}

type ViewerJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type ViewerLeavePayload struct {
	UserID string `json:"userId"`
}

type ViewerStatePayload struct {
	Viewers map[string]string `json:"viewers"` // userID -> displayName
}

type ErrorPayload struct {
	Message string `json:"message"`
}
