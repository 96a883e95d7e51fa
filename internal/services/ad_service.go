package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type AdService interface {
	Create(clientUserID string, req *dto.CreateAdRequest, media []dto.UploadedFile) (*dto.AdDTO, error)
	ListForClient(clientUserID string, query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error)
	ListForTalent(talentUserID string, query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error)
	ListForArcon(query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error)
	ListAll(query *dto.AdListQuery) ([]dto.AdDTO, *dto.AdStats, dto.Pagination, error)
	GetByID(id, userID string, role models.UserRole) (*dto.AdDTO, error)
	Review(req *dto.ArconReviewRequest, reviewerEmail string) (*dto.AdDTO, error)
	GetDocuments(adID, docType string) (*dto.AdDocumentsDTO, error)
}

type AdServiceImpl struct {
	db          *gorm.DB
	adRepo      repositories.AdRepository
	paymentRepo repositories.PaymentRepository
	requestRepo repositories.RequestRepository
	clientRepo  repositories.ClientRepository
	talentRepo  repositories.TalentRepository
	userRepo    repositories.UserRepository
	mailer      *email.Mailer
}

func NewAdService(
	db *gorm.DB,
	adRepo repositories.AdRepository,
	paymentRepo repositories.PaymentRepository,
	requestRepo repositories.RequestRepository,
	clientRepo repositories.ClientRepository,
	talentRepo repositories.TalentRepository,
	userRepo repositories.UserRepository,
	mailer *email.Mailer,
) AdService {
	return &AdServiceImpl{
		db:          db,
		adRepo:      adRepo,
		paymentRepo: paymentRepo,
		requestRepo: requestRepo,
		clientRepo:  clientRepo,
		talentRepo:  talentRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// Create validates the precondition chain (client profile, then request,
// then payment), then creates the ad and claims the payment in a single
// transaction. The claim is a conditional update, so two submissions racing
// for one payment cannot both win.
func (s *AdServiceImpl) Create(clientUserID string, req *dto.CreateAdRequest, media []dto.UploadedFile) (*dto.AdDTO, error) {
	if !models.IsValidAdCategory(req.Category) {
		return nil, apperrors.NewBadRequestError("Unknown ad category: " + req.Category)
	}

	if _, err := s.clientRepo.FindByUserID(clientUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	request, err := s.requestRepo.FindByID(req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ad", "Request not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if request.ClientUserID != clientUserID {
		return nil, apperrors.NewForbiddenError("Request belongs to another client")
	}
	if request.Status != models.RequestStatusAccepted {
		return nil, apperrors.ErrRequestNotAccepted
	}

	payment, err := s.paymentRepo.FindByID(req.PaymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ad", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if payment.ClientUserID != clientUserID {
		return nil, apperrors.NewForbiddenError("Payment belongs to another client")
	}
	if payment.Status != models.PaymentStatusSuccess {
		return nil, apperrors.ErrPaymentNotSuccessful
	}
	if payment.AdID != nil {
		return nil, apperrors.ErrPaymentAlreadyUsed
	}

	now := time.Now()
	ad := &models.Ad{
		ClientUserID:        clientUserID,
		TalentUserID:        request.TalentUserID,
		RequestID:           req.RequestID,
		PaymentID:           req.PaymentID,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		TargetAudience:      req.TargetAudience,
		ArconStatus:         models.ArconStatusPending,
		ArconSubmissionDate: &now,
		PublishStatus:       models.PublishStatusPendingArcon,
	}

	items := make([]models.MediaItem, 0, len(media))
	for _, f := range media {
		items = append(items, models.MediaItem{
			URL:       f.URL,
			StorageID: f.StorageID,
			Type:      mediaType(f.ContentType),
			Caption:   f.Caption,
		})
	}
	if len(items) > 0 {
		ad.SetMediaFiles(items)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.adRepo.CreateInTx(tx, ad); err != nil {
			return err
		}

		claimed, err := s.paymentRepo.ClaimForAd(tx, payment.ID, ad.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return apperrors.ErrPaymentAlreadyUsed
		}

		return tx.Model(&models.Client{}).
			Where("user_id = ?", clientUserID).
			Update("total_ads_submitted", gorm.Expr("total_ads_submitted + ?", 1)).Error
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendAdSubmittedNotice(ad.ID, ad.Title, ad.Category)

	out := dto.NewAdDTO(ad)
	return &out, nil
}

func (s *AdServiceImpl) ListForClient(clientUserID string, query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error) {
	ads, total, err := s.adRepo.FindWithFilter(repositories.AdFilter{
		ClientUserID: clientUserID,
		ArconStatus:  models.ArconStatus(query.Status),
		Category:     query.Category,
		Page:         query.Page,
		PageSize:     query.Limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewAdDTOs(ads), dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *AdServiceImpl) ListForTalent(talentUserID string, query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error) {
	q := s.db.Model(&models.Ad{}).Where("talent_user_id = ?", talentUserID)
	if query.Status != "" {
		q = q.Where("arcon_status = ?", query.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	page, pageSize := normalizePage(query.Page, query.Limit)
	var ads []models.Ad
	if err := q.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&ads).Error; err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	return dto.NewAdDTOs(ads), dto.NewPagination(query.Page, query.Limit, total), nil
}

// ListForArcon serves the review queue, oldest submissions first.
func (s *AdServiceImpl) ListForArcon(query *dto.AdListQuery) ([]dto.AdDTO, dto.Pagination, error) {
	status := models.ArconStatus(query.Status)
	if status == "" {
		status = models.ArconStatusPending
	}

	q := s.db.Model(&models.Ad{}).Where("arcon_status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	page, pageSize := normalizePage(query.Page, query.Limit)
	var ads []models.Ad
	if err := q.Order("arcon_submission_date ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&ads).Error; err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	return dto.NewAdDTOs(ads), dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *AdServiceImpl) ListAll(query *dto.AdListQuery) ([]dto.AdDTO, *dto.AdStats, dto.Pagination, error) {
	ads, total, err := s.adRepo.FindWithFilter(repositories.AdFilter{
		ArconStatus: models.ArconStatus(query.Status),
		Category:    query.Category,
		Page:        query.Page,
		PageSize:    query.Limit,
	})
	if err != nil {
		return nil, nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	stats := &dto.AdStats{}
	for status, dest := range map[models.ArconStatus]*int64{
		models.ArconStatusPending:     &stats.Pending,
		models.ArconStatusUnderReview: &stats.UnderReview,
		models.ArconStatusApproved:    &stats.Approved,
		models.ArconStatusRejected:    &stats.Rejected,
	} {
		count, err := s.adRepo.CountByArconStatus(status)
		if err != nil {
			return nil, nil, dto.Pagination{}, apperrors.InternalError(err)
		}
		*dest = count
	}

	return dto.NewAdDTOs(ads), stats, dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *AdServiceImpl) GetByID(id, userID string, role models.UserRole) (*dto.AdDTO, error) {
	ad, err := s.adRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ad", "Ad not found")
		}
		return nil, apperrors.InternalError(err)
	}

	switch role {
	case models.UserRoleAdmin, models.UserRoleSuperadmin, models.UserRoleArcon:
	default:
		if ad.ClientUserID != userID && ad.TalentUserID != userID {
			return nil, apperrors.NewForbiddenError("Not authorized to view this ad")
		}
	}

	out := dto.NewAdDTO(ad)
	return &out, nil
}

// Review records a regulator decision. Re-reviews are allowed and the latest
// decision wins; every decision is appended to the history.
func (s *AdServiceImpl) Review(req *dto.ArconReviewRequest, reviewerEmail string) (*dto.AdDTO, error) {
	ad, err := s.adRepo.FindByID(req.AdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ad", "Ad not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Decision == "rejected" && strings.TrimSpace(req.RejectionReason) == "" {
		return nil, apperrors.ErrRejectionReasonRequired
	}

	now := time.Now()
	ad.ArconReviewDate = &now
	ad.ArconReviewNotes = req.Notes
	ad.ArconReviewedBy = reviewerEmail

	switch req.Decision {
	case "approved":
		ad.ArconStatus = models.ArconStatusApproved
		ad.PublishStatus = models.PublishStatusApproved
		ad.PublishDate = &now
		ad.ArconRejectionReason = ""
	case "rejected":
		ad.ArconStatus = models.ArconStatusRejected
		ad.PublishStatus = models.PublishStatusRejected
		ad.ArconRejectionReason = req.RejectionReason
	case "under-review":
		// Only the regulator status moves; publication state is untouched.
		ad.ArconStatus = models.ArconStatusUnderReview
	default:
		return nil, apperrors.ErrInvalidReviewDecision
	}

	ad.AppendArconReview(models.ArconReview{
		Decision:        req.Decision,
		Notes:           req.Notes,
		RejectionReason: req.RejectionReason,
		ReviewedBy:      reviewerEmail,
		ReviewedAt:      now,
	})

	if err := s.adRepo.Update(ad); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Decision != "under-review" {
		if user, uerr := s.userRepo.FindByID(ad.ClientUserID); uerr == nil {
			s.mailer.SendAdDecision(user.Email, user.FullName(), ad.Title, req.Decision, req.RejectionReason)
		}
	}

	out := dto.NewAdDTO(ad)
	return &out, nil
}

// GetDocuments exposes the talent documents behind an ad to the regulator.
// First access of each type flips an audit flag that is never reset.
func (s *AdServiceImpl) GetDocuments(adID, docType string) (*dto.AdDocumentsDTO, error) {
	ad, err := s.adRepo.FindByID(adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ad", "Ad not found")
		}
		return nil, apperrors.InternalError(err)
	}

	talent, err := s.talentRepo.FindByUserID(ad.TalentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var urls []string
	var auditColumn string
	switch docType {
	case "nin":
		if talent.NINDocumentURL != "" {
			urls = append(urls, talent.NINDocumentURL)
		}
		auditColumn = "arcon_downloaded_nin"
	case "photos":
		for _, photo := range talent.GetPhotos() {
			urls = append(urls, photo.URL)
		}
		auditColumn = "arcon_downloaded_photos"
	default:
		return nil, apperrors.NewBadRequestError("Unknown document type: " + docType)
	}

	if len(urls) == 0 {
		return nil, apperrors.ErrDocumentNotAvailable
	}

	if err := s.db.Model(&models.Ad{}).
		Where("id = ?", ad.ID).
		Update(auditColumn, true).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdDocumentsDTO{
		AdID:     ad.ID,
		TalentID: talent.ID,
		Type:     docType,
		URLs:     urls,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return page, pageSize
}
