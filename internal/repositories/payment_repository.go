package repositories

import (
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	FindByReference(reference string) (*models.Payment, error)
	Update(payment *models.Payment) error

	FindByClient(clientUserID string, status models.PaymentStatus, page, pageSize int) ([]models.Payment, int64, error)
	FindByRequest(requestID string) ([]models.Payment, error)

	// ClaimForAd atomically binds an unclaimed successful payment to an ad.
	// Returns false when the payment was already claimed or not successful,
	// so concurrent ad submissions cannot share one payment.
	ClaimForAd(tx *gorm.DB, paymentID, adID string) (bool, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByReference(reference string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "reference = ?", reference).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *PaymentRepositoryImpl) FindByClient(clientUserID string, status models.PaymentStatus, page, pageSize int) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{}).Where("client_user_id = ?", clientUserID)
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

	var payments []models.Payment
	err := query.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *PaymentRepositoryImpl) FindByRequest(requestID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) ClaimForAd(tx *gorm.DB, paymentID, adID string) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	res := db.Model(&models.Payment{}).
		Where("id = ? AND status = ? AND ad_id IS NULL", paymentID, models.PaymentStatusSuccess).
		Update("ad_id", adID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
