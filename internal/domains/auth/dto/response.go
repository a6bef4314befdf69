package dto

type AuthResponse struct {
	Email        string `json:"email"`
	UserName     string `json:"userName"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
