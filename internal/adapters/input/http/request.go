package http

type (
	// TransformRequest struct - HTTP request DTO
	TransformRequest struct {
		Text string `json:"text" validate:"max=100000" form:"text"`
	}

	// CredentialsRequest struct - HTTP request DTO for signup and login.
	// Empty fields are accepted here so the session records its own message.
	CredentialsRequest struct {
		Username string `json:"username" validate:"max=150" form:"username"`
		Password string `json:"password" validate:"max=256" form:"password"`
	}

	// HistoryItemParams struct - HTTP path parameters of a single history item
	HistoryItemParams struct {
		ID int64 `params:"id" validate:"gt=0"`
	}
)
