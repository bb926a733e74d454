package user

type UserRegisterDTO struct {
	UserName    string `json:"userName" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type UserLoginDTO struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}
