package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Auth wire contract. Key casing (totpCode, qrCodeURL) is fixed by the
// existing frontend and authenticator enrollment flow.

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type registerResponse struct {
	Token     string `json:"token"`
	QRCodeURL string `json:"qrCodeURL"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	TOTPCode string `json:"totpCode" validate:"required,len=6,numeric"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
