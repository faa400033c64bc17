package dto

type ViewAdResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}
