package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type RequestRepository interface {
	Create(request *models.Request) error
	FindByID(id string) (*models.Request, error)
	Update(request *models.Request) error

	FindByClient(clientUserID string, status models.RequestStatus, page, pageSize int) ([]models.Request, int64, error)
	FindByTalent(talentUserID string, status models.RequestStatus, page, pageSize int) ([]models.Request, int64, error)

	// ResolvePending moves a pending request to a terminal status and
	// reports whether the transition actually happened. A zero-row update
	// means the request was already resolved by a concurrent caller.
	ResolvePending(requestID string, status models.RequestStatus, decision, message string) (bool, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var request models.Request
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) Update(request *models.Request) error {
	return r.db.Save(request).Error
}

func (r *RequestRepositoryImpl) FindByClient(clientUserID string, status models.RequestStatus, page, pageSize int) ([]models.Request, int64, error) {
	return r.findFor(r.db.Where("client_user_id = ?", clientUserID), status, page, pageSize)
}

func (r *RequestRepositoryImpl) FindByTalent(talentUserID string, status models.RequestStatus, page, pageSize int) ([]models.Request, int64, error) {
	return r.findFor(r.db.Where("talent_user_id = ?", talentUserID), status, page, pageSize)
}

func (r *RequestRepositoryImpl) findFor(query *gorm.DB, status models.RequestStatus, page, pageSize int) ([]models.Request, int64, error) {
	query = query.Model(&models.Request{})
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

	var requests []models.Request
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *RequestRepositoryImpl) ResolvePending(requestID string, status models.RequestStatus, decision, message string) (bool, error) {
	updates := map[string]any{"status": status}
	if decision != "" {
		now := time.Now()
		updates["response_decision"] = decision
		updates["response_message"] = message
		updates["responded_at"] = &now
	}

	res := r.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
