package domain

import "time"

// HistoryItem is one past transformation persisted by the remote service
type HistoryItem struct {
	ID           int64     `json:"id"`
	OriginalText string    `json:"original_text"`
	ResultText   string    `json:"result_text"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
}

// Kind returns the transformation kind recorded for the item, if it is a known one
func (h HistoryItem) Kind() (TransformKind, bool) {
	return ParseTransformKind(h.Type)
}

// ContainsHistoryItem reports whether items holds an entry with the given id
func ContainsHistoryItem(items []HistoryItem, id int64) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
