package repositories

import (
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client) error
	FindByID(id string) (*models.Client, error)
	FindByUserID(userID string) (*models.Client, error)
	Update(client *models.Client) error

	// AdjustTotalSpent adds delta (may be negative) to the client's
	// lifetime spend, atomically.
	AdjustTotalSpent(userID string, delta float64) error

	// IncrementAdsSubmitted bumps the lifetime ad counter, atomically.
	IncrementAdsSubmitted(userID string) error
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepositoryImpl) FindByID(id string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) FindByUserID(userID string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *ClientRepositoryImpl) AdjustTotalSpent(userID string, delta float64) error {
	return r.db.Model(&models.Client{}).
		Where("user_id = ?", userID).
		Update("total_spent", gorm.Expr("total_spent + ?", delta)).Error
}

func (r *ClientRepositoryImpl) IncrementAdsSubmitted(userID string) error {
	return r.db.Model(&models.Client{}).
		Where("user_id = ?", userID).
		Update("total_ads_submitted", gorm.Expr("total_ads_submitted + ?", 1)).Error
}
