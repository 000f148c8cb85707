package model

// CredentialsRequest is the body of both register and login.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse carries a freshly issued identity token.
type TokenResponse struct {
	Token string `json:"token"`
}
