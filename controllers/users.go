package controllers

import (
	"errors"
	"log"
	"net/http"

	"staffMan/dto/user"
	"staffMan/repositories"
	"staffMan/services"

	"github.com/gin-gonic/gin"
)

func RegisterUser(c *gin.Context) {
	var data user.UserRegisterDTO

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	userService := services.UserService{}

	token, err := userService.RegisterUser(data)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
			return
		}
		log.Println("Register error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func LoginUser(c *gin.Context) {
	var loginData user.UserLoginDTO

	if err := c.ShouldBindJSON(&loginData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	userService := services.UserService{}

	token, err := userService.LoginUser(loginData.UserName, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid Credentials"})
			return
		}
		log.Println("Login error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetMe returns the account named by the token's subject; the password
// hash is excluded by the model's JSON tags.
func GetMe(c *gin.Context) {
	account, err := repositories.GetUserByID(c.GetString("userId"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Println("Error fetching account:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	c.JSON(http.StatusOK, account)
}
