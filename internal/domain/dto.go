package domain

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TransformRequest struct - Payload sent to a transformation endpoint
	TransformRequest struct {
		Text string `json:"text"`
	}

	// TransformResponse struct - Result of a transformation
	TransformResponse struct {
		Result string `json:"result"`
	}

	// Credentials struct - Username and password for signup and login
	Credentials struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// LoginResponse struct - Bearer token issued by the service
	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)
