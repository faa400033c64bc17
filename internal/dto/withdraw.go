package dto

type WithdrawRequestDTO struct {
	TonWalletAddress string `json:"tonWalletAddress" example:"UQDKbjIcfM6ezt8KjKJJLshZJJSqX7XOA4ff-W72r5gqPrLF"`
}

type WithdrawResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}
