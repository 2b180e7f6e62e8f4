package types

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type RegisterRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginToken struct {
	Token string `json:"token"`
}

type Message struct {
	Message string `json:"message"`
}
