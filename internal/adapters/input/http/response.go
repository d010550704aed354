package http

import (
	"net/http"

	"textkit-client/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The text service is not reachable"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// SessionResponse struct - HTTP response DTO of the session state
	SessionResponse struct {
		Authenticated  bool                  `json:"authenticated"`
		Result         *string               `json:"result"`
		Error          *string               `json:"error"`
		Loading        *string               `json:"loading"`
		History        []HistoryItemResponse `json:"history"`
		HistoryLoading bool                  `json:"history_loading"`
	}

	// HistoryItemResponse struct - HTTP response DTO for one history item
	HistoryItemResponse struct {
		ID           int64  `json:"id"`
		OriginalText string `json:"original_text"`
		ResultText   string `json:"result_text"`
		Type         string `json:"type"`
		Label        string `json:"label,omitempty"`
		Timestamp    string `json:"timestamp"`
	}

	// TransformKindResponse struct - HTTP response DTO describing one transformation
	TransformKindResponse struct {
		Kind        string `json:"kind"`
		Label       string `json:"label"`
		Description string `json:"description"`
	}
)

// NewSessionResponse converts a session snapshot. The token never leaves the process.
func NewSessionResponse(state domain.SessionState) SessionResponse {
	resp := SessionResponse{
		Authenticated:  state.Authenticated,
		Result:         state.Result,
		Error:          state.ErrorMessage,
		HistoryLoading: state.HistoryLoading,
		History:        make([]HistoryItemResponse, 0, len(state.History)),
	}
	if state.Loading != nil {
		loading := string(*state.Loading)
		resp.Loading = &loading
	}
	for _, item := range state.History {
		httpItem := HistoryItemResponse{
			ID:           item.ID,
			OriginalText: item.OriginalText,
			ResultText:   item.ResultText,
			Type:         item.Type,
			Timestamp:    domain.FormatTimestamp(item.Timestamp),
		}
		if kind, ok := item.Kind(); ok {
			httpItem.Label = kind.Label()
		}
		resp.History = append(resp.History, httpItem)
	}
	return resp
}
