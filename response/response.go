package response

type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorResponse names the settings field that failed validation.
type FieldErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
}
