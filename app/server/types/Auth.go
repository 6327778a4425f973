package types

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type LoginToken struct {
	Token *string `json:"token"`
}

type SetupRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Name      *string `json:"name"`
	SecretKey *string `json:"secretKey"`
}

type SetupResult struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type SetupStatus struct {
	AdminExists bool    `json:"adminExists"`
	Email       *string `json:"email"`
}
