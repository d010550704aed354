package domain

// TokenStorageKey is the well-known key the session token is persisted under
const TokenStorageKey = "jwt"

// SessionState is a point-in-time copy of the client session.
// Token is empty for anonymous sessions. Result and ErrorMessage are never
// both set by the same transformation attempt. Loading names the
// transformation in flight, if any.
type SessionState struct {
	Token          string         `json:"-"`
	Authenticated  bool           `json:"authenticated"`
	Result         *string        `json:"result"`
	ErrorMessage   *string        `json:"error"`
	Loading        *TransformKind `json:"loading"`
	History        []HistoryItem  `json:"history"`
	HistoryLoading bool           `json:"history_loading"`
}

// NewSessionState creates an empty anonymous session
func NewSessionState() SessionState {
	return SessionState{
		History: make([]HistoryItem, 0),
	}
}

// Clone returns a deep copy so callers cannot mutate the owner's state
func (s SessionState) Clone() SessionState {
	clone := s
	clone.Authenticated = s.Token != ""
	if s.Result != nil {
		result := *s.Result
		clone.Result = &result
	}
	if s.ErrorMessage != nil {
		msg := *s.ErrorMessage
		clone.ErrorMessage = &msg
	}
	if s.Loading != nil {
		kind := *s.Loading
		clone.Loading = &kind
	}
	clone.History = make([]HistoryItem, len(s.History))
	copy(clone.History, s.History)
	return clone
}
