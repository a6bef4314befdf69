package dto

type RegisterRequest struct {
	FirstName string `example:"Jane" json:"firstName" validate:"required,max=50"`
	LastName  string `example:"Doe" json:"lastName" validate:"required,max=50"`
	UserName  string `example:"jane" json:"userName" validate:"required,max=50"`
	Email     string `example:"jane@geoapi.com" json:"email" validate:"required,email"`
	Password  string `example:"Secret123" json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserName string `example:"admin" json:"userName" validate:"required"`
	Password string `example:"Admin123!" json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
