package store

import (
	"errors"

	"matchday/internal/forum/models"

	"gorm.io/gorm"
)

func ListTeams(db *gorm.DB) ([]models.Team, error) {
	var teams []models.Team
	if err := db.Order("id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func GetTeam(db *gorm.DB, id uint) (*models.Team, error) {
	var team models.Team
	if err := db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}
