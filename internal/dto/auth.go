package dto

type LoginResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type UserDataResponseDTO struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

type LogoutResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
