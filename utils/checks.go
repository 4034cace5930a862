package utils

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"

	models "courtside/models/postgres"
)

// AccountExists checks the username against the persisted accounts
func AccountExists(db *gorm.DB, username string) error {
	var account models.Account
	err := db.Where("username = ?", username).First(&account).Error
	return err
}

// GetUsernameFromClient pulls the username out of the socket handshake
func GetUsernameFromClient(client *socket.Socket) (string, error) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No username provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing username"})
		return "", errors.New("Authentication data missing")
	}

	username, exists := authData["username"].(string)
	if !exists {
		return "", errors.New("Username not found in authentication")
	}

	return username, nil
}
