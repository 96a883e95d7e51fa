package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/logger"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/paystack"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type PaymentService interface {
	Initialize(ctx context.Context, clientUserID string, req *dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error)
	Verify(ctx context.Context, reference string) (*dto.PaymentDTO, error)
	ListForClient(clientUserID string, query *dto.PaymentListQuery) ([]dto.PaymentDTO, *dto.PaymentListSummary, dto.Pagination, error)
	ListAll(query *dto.PaymentListQuery) ([]dto.PaymentDTO, *dto.PaymentListSummary, dto.Pagination, error)
	GetByID(id, userID string, role models.UserRole) (*dto.PaymentDTO, error)
	Refund(ctx context.Context, req *dto.RefundPaymentRequest) (*dto.PaymentDTO, error)
}

type PaymentServiceImpl struct {
	db          *gorm.DB
	paymentRepo repositories.PaymentRepository
	requestRepo repositories.RequestRepository
	clientRepo  repositories.ClientRepository
	userRepo    repositories.UserRepository
	gateway     paystack.Gateway
	mailer      *email.Mailer
}

func NewPaymentService(
	db *gorm.DB,
	paymentRepo repositories.PaymentRepository,
	requestRepo repositories.RequestRepository,
	clientRepo repositories.ClientRepository,
	userRepo repositories.UserRepository,
	gateway paystack.Gateway,
	mailer *email.Mailer,
) PaymentService {
	return &PaymentServiceImpl{
		db:          db,
		paymentRepo: paymentRepo,
		requestRepo: requestRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		mailer:      mailer,
	}
}

// Initialize creates the pending Payment before calling the gateway, so a
// gateway failure still leaves a failed payment on record.
func (s *PaymentServiceImpl) Initialize(ctx context.Context, clientUserID string, req *dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidPaymentAmount
	}

	if _, err := s.clientRepo.FindByUserID(clientUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.RequestID != "" {
		request, err := s.requestRepo.FindByID(req.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFoundError("payment", "Request not found")
			}
			return nil, apperrors.InternalError(err)
		}
		if request.ClientUserID != clientUserID {
			return nil, apperrors.NewForbiddenError("Request belongs to another client")
		}
		if request.Status != models.RequestStatusAccepted {
			return nil, apperrors.ErrRequestNotAccepted
		}
	}

	user, err := s.userRepo.FindByID(clientUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "NGN"
	}

	payment := &models.Payment{
		ClientUserID: clientUserID,
		Amount:       req.Amount,
		Currency:     currency,
		Gateway:      "paystack",
		// Placeholder until the gateway hands back its reference.
		Reference: "init_" + uuid.NewString(),
		Status:    models.PaymentStatusPending,
	}
	if req.RequestID != "" {
		payment.RequestID = &req.RequestID
	}
	if len(req.Metadata) > 0 {
		payment.SetMetadata(req.Metadata)
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	gatewayMeta := map[string]any{
		"paymentId": payment.ID,
		"clientId":  clientUserID,
	}
	for k, v := range req.Metadata {
		gatewayMeta[k] = v
	}

	tx, err := s.gateway.InitializeTransaction(ctx, user.Email, req.Amount, gatewayMeta)
	if err != nil {
		if uerr := s.db.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Update("status", models.PaymentStatusFailed).Error; uerr != nil {
			logger.Error("could not mark payment failed after gateway error", "payment_id", payment.ID, "error", uerr)
		}
		return nil, apperrors.UpstreamError(err, "payment", "Payment gateway is unavailable")
	}

	payment.Reference = tx.Reference
	payment.AccessCode = tx.AccessCode
	payment.AuthorizationURL = tx.AuthorizationURL
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.InitializePaymentResponse{
		Payment:          dto.NewPaymentDTO(payment),
		AuthorizationURL: tx.AuthorizationURL,
		AccessCode:       tx.AccessCode,
		Reference:        tx.Reference,
	}, nil
}

// Verify reconciles a payment with the gateway. It credits the client's
// lifetime spend exactly once, on the pending-to-success edge; repeat calls
// after success are idempotent no-ops.
func (s *PaymentServiceImpl) Verify(ctx context.Context, reference string) (*dto.PaymentDTO, error) {
	payment, err := s.paymentRepo.FindByReference(reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.Status == models.PaymentStatusSuccess || payment.Status == models.PaymentStatusRefunded {
		out := dto.NewPaymentDTO(payment)
		return &out, nil
	}

	verification, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "payment", "Payment gateway is unavailable")
	}

	switch verification.Status {
	case "success":
		err = s.db.Transaction(func(tx *gorm.DB) error {
			now := time.Now()
			// Conditional update guards against a concurrent verify of the
			// same reference double-crediting the client.
			res := tx.Model(&models.Payment{}).
				Where("id = ? AND status <> ?", payment.ID, models.PaymentStatusSuccess).
				Updates(map[string]any{
					"status":         models.PaymentStatusSuccess,
					"paid_at":        &now,
					"payment_method": verification.Channel,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			return tx.Model(&models.Client{}).
				Where("user_id = ?", payment.ClientUserID).
				Update("total_spent", gorm.Expr("total_spent + ?", payment.Amount)).Error
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		if user, uerr := s.userRepo.FindByID(payment.ClientUserID); uerr == nil {
			s.mailer.SendPaymentReceipt(user.Email, user.FullName(), payment.Reference, payment.Currency, payment.Amount)
		}
	default:
		// Anything the gateway reports other than success settles as failed.
		logger.Info("payment settled as failed", "reference", reference, "gateway_status", verification.Status)
		if err := s.db.Model(&models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, models.PaymentStatusPending).
			Update("status", models.PaymentStatusFailed).Error; err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	payment, err = s.paymentRepo.FindByReference(reference)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewPaymentDTO(payment)
	return &out, nil
}

func (s *PaymentServiceImpl) ListForClient(clientUserID string, query *dto.PaymentListQuery) ([]dto.PaymentDTO, *dto.PaymentListSummary, dto.Pagination, error) {
	payments, total, err := s.paymentRepo.FindByClient(clientUserID, models.PaymentStatus(query.Status), query.Page, query.Limit)
	if err != nil {
		return nil, nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	summary, err := s.summarize(clientUserID)
	if err != nil {
		return nil, nil, dto.Pagination{}, err
	}

	return dto.NewPaymentDTOs(payments), summary, dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *PaymentServiceImpl) ListAll(query *dto.PaymentListQuery) ([]dto.PaymentDTO, *dto.PaymentListSummary, dto.Pagination, error) {
	q := s.db.Model(&models.Payment{})
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.Limit
	if pageSize <= 0 {
		pageSize = 20
	}

	var payments []models.Payment
	if err := q.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&payments).Error; err != nil {
		return nil, nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	summary, err := s.summarize("")
	if err != nil {
		return nil, nil, dto.Pagination{}, err
	}

	return dto.NewPaymentDTOs(payments), summary, dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *PaymentServiceImpl) GetByID(id, userID string, role models.UserRole) (*dto.PaymentDTO, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.ClientUserID != userID &&
		role != models.UserRoleAdmin && role != models.UserRoleSuperadmin {
		return nil, apperrors.NewForbiddenError("Not authorized to view this payment")
	}

	out := dto.NewPaymentDTO(payment)
	return &out, nil
}

// Refund reverses a successful payment at the gateway and debits the
// client's lifetime spend. A published ad backed by this payment stays
// published.
func (s *PaymentServiceImpl) Refund(ctx context.Context, req *dto.RefundPaymentRequest) (*dto.PaymentDTO, error) {
	payment, err := s.paymentRepo.FindByID(req.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.Status != models.PaymentStatusSuccess {
		return nil, apperrors.ErrPaymentNotRefundable
	}

	if _, err := s.gateway.CreateRefund(ctx, payment.Reference); err != nil {
		return nil, apperrors.UpstreamError(err, "payment", "Payment gateway refused the refund")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, models.PaymentStatusSuccess).
			Updates(map[string]any{
				"status":        models.PaymentStatusRefunded,
				"refunded_at":   &now,
				"refund_reason": req.Reason,
				"refund_amount": payment.Amount,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrPaymentNotRefundable
		}
		return tx.Model(&models.Client{}).
			Where("user_id = ?", payment.ClientUserID).
			Update("total_spent", gorm.Expr("total_spent - ?", payment.Amount)).Error
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	payment, err = s.paymentRepo.FindByID(req.PaymentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewPaymentDTO(payment)
	return &out, nil
}

func (s *PaymentServiceImpl) summarize(clientUserID string) (*dto.PaymentListSummary, error) {
	summary := &dto.PaymentListSummary{}

	base := func(status models.PaymentStatus) *gorm.DB {
		q := s.db.Model(&models.Payment{}).Where("status = ?", status)
		if clientUserID != "" {
			q = q.Where("client_user_id = ?", clientUserID)
		}
		return q
	}

	if err := base(models.PaymentStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.TotalSuccessful).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := base(models.PaymentStatusRefunded).
		Select("COALESCE(SUM(refund_amount), 0)").Scan(&summary.TotalRefunded).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	countQ := s.db.Model(&models.Payment{})
	if clientUserID != "" {
		countQ = countQ.Where("client_user_id = ?", clientUserID)
	}
	if err := countQ.Count(&summary.Count).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return summary, nil
}
