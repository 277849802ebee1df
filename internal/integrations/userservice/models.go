package userservice

// User модель пользователя из UserService
type User struct {
	ID          int64 `json:"id"`
	IsCaretaker bool  `json:"isCaretaker"`
}

// Pet модель питомца из UserService
type Pet struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"ownerId"`
	Name    string `json:"name"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
