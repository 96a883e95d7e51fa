package repositories

import (
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	FindByID(id string) (*models.Contact, error)
	Update(contact *models.Contact) error
	Delete(id string) error

	FindWithFilter(status models.ContactStatus, page, pageSize int) ([]models.Contact, int64, error)
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepositoryImpl) FindByID(id string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepositoryImpl) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *ContactRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

func (r *ContactRepositoryImpl) FindWithFilter(status models.ContactStatus, page, pageSize int) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var contacts []models.Contact
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}
