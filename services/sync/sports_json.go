package sync

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"courtside/models"
)

func sportsJSON(user *models.User) (datatypes.JSON, error) {
	labels := make([]string, 0, len(user.Sports))
	for _, s := range user.Sports {
		labels = append(labels, string(s))
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return nil, fmt.Errorf("error marshaling sports list: %v", err)
	}
	return datatypes.JSON(data), nil
}
