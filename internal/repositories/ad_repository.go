package repositories

import (
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type AdRepository interface {
	Create(ad *models.Ad) error
	CreateInTx(tx *gorm.DB, ad *models.Ad) error
	FindByID(id string) (*models.Ad, error)
	Update(ad *models.Ad) error

	FindWithFilter(filter AdFilter) ([]models.Ad, int64, error)
	CountByArconStatus(status models.ArconStatus) (int64, error)
}

type AdFilter struct {
	ClientUserID  string
	ArconStatus   models.ArconStatus
	PublishStatus models.PublishStatus
	Category      string
	Page          int
	PageSize      int
}

type AdRepositoryImpl struct {
	db *gorm.DB
}

func NewAdRepository(db *gorm.DB) AdRepository {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) Create(ad *models.Ad) error {
	return r.db.Create(ad).Error
}

func (r *AdRepositoryImpl) CreateInTx(tx *gorm.DB, ad *models.Ad) error {
	return tx.Create(ad).Error
}

func (r *AdRepositoryImpl) FindByID(id string) (*models.Ad, error) {
	var ad models.Ad
	if err := r.db.First(&ad, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *AdRepositoryImpl) Update(ad *models.Ad) error {
	return r.db.Save(ad).Error
}

func (r *AdRepositoryImpl) FindWithFilter(filter AdFilter) ([]models.Ad, int64, error) {
	query := r.db.Model(&models.Ad{})

	if filter.ClientUserID != "" {
		query = query.Where("client_user_id = ?", filter.ClientUserID)
	}
	if filter.ArconStatus != "" {
		query = query.Where("arcon_status = ?", filter.ArconStatus)
	}
	if filter.PublishStatus != "" {
		query = query.Where("publish_status = ?", filter.PublishStatus)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var ads []models.Ad
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}

	return ads, total, nil
}

func (r *AdRepositoryImpl) CountByArconStatus(status models.ArconStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Ad{}).
		Where("arcon_status = ?", status).
		Count(&count).Error
	return count, err
}
