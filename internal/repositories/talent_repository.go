package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type TalentRepository interface {
	Create(talent *models.Talent) error
	FindByID(id string) (*models.Talent, error)
	FindByUserID(userID string) (*models.Talent, error)
	Update(talent *models.Talent) error
	Delete(id string) error

	FindWithFilter(filter TalentFilter) ([]models.Talent, int64, error)
	UpdateApproval(talentID string, status models.ApprovalStatus, reason string) error
	CountByApprovalStatus(status models.ApprovalStatus) (int64, error)
}

type TalentFilter struct {
	ApprovalStatus models.ApprovalStatus
	Category       string
	Location       string
	Search         string
	PublicOnly     bool
	Page           int
	PageSize       int
}

type TalentRepositoryImpl struct {
	db *gorm.DB
}

func NewTalentRepository(db *gorm.DB) TalentRepository {
	return &TalentRepositoryImpl{db: db}
}

func (r *TalentRepositoryImpl) Create(talent *models.Talent) error {
	return r.db.Create(talent).Error
}

func (r *TalentRepositoryImpl) FindByID(id string) (*models.Talent, error) {
	var talent models.Talent
	if err := r.db.First(&talent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &talent, nil
}

func (r *TalentRepositoryImpl) FindByUserID(userID string) (*models.Talent, error) {
	var talent models.Talent
	if err := r.db.First(&talent, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &talent, nil
}

func (r *TalentRepositoryImpl) Update(talent *models.Talent) error {
	return r.db.Save(talent).Error
}

func (r *TalentRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Talent{}, "id = ?", id).Error
}

func (r *TalentRepositoryImpl) FindWithFilter(filter TalentFilter) ([]models.Talent, int64, error) {
	query := r.db.Model(&models.Talent{})

	if filter.ApprovalStatus != "" {
		query = query.Where("arcon_approval_status = ?", filter.ApprovalStatus)
	}
	if filter.Category != "" {
		query = query.Where("talent_category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR bio LIKE ?", pattern, pattern, pattern)
	}
	if filter.PublicOnly {
		query = query.Where("is_publicly_visible = ?", true)
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

	var talents []models.Talent
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&talents).Error
	if err != nil {
		return nil, 0, err
	}

	return talents, total, nil
}

func (r *TalentRepositoryImpl) UpdateApproval(talentID string, status models.ApprovalStatus, reason string) error {
	updates := map[string]any{
		"arcon_approval_status":  status,
		"arcon_rejection_reason": reason,
	}
	if status == models.ApprovalStatusApproved || status == models.ApprovalStatusRejected {
		now := time.Now()
		updates["arcon_approval_date"] = &now
	}
	updates["is_publicly_visible"] = status == models.ApprovalStatusApproved

	return r.db.Model(&models.Talent{}).
		Where("id = ?", talentID).
		Updates(updates).Error
}

func (r *TalentRepositoryImpl) CountByApprovalStatus(status models.ApprovalStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Talent{}).
		Where("arcon_approval_status = ?", status).
		Count(&count).Error
	return count, err
}
