package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/auth"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type TalentService interface {
	SubmitAnonymous(req *dto.SubmitTalentRequest, uploads *dto.TalentUploads) (*dto.TalentDTO, error)
	UpdateProfile(userID string, req *dto.UpdateTalentProfileRequest, uploads *dto.TalentUploads) (*dto.TalentDTO, error)
	GetOwnProfile(userID string) (*dto.TalentDTO, error)
	ListApproved(query *dto.ApprovedTalentsQuery) ([]dto.TalentDTO, dto.Pagination, error)
	GetByID(id string, requesterRole models.UserRole) (*dto.TalentDTO, error)
	ReviewApproval(req *dto.ArconApprovalRequest) (*dto.TalentDTO, error)
	GetDocuments(talentID, docType string) (*dto.TalentDocumentsDTO, error)
}

type TalentServiceImpl struct {
	db         *gorm.DB
	userRepo   repositories.UserRepository
	talentRepo repositories.TalentRepository
	mailer     *email.Mailer
}

func NewTalentService(db *gorm.DB, userRepo repositories.UserRepository, talentRepo repositories.TalentRepository, mailer *email.Mailer) TalentService {
	return &TalentServiceImpl{
		db:         db,
		userRepo:   userRepo,
		talentRepo: talentRepo,
		mailer:     mailer,
	}
}

// SubmitAnonymous creates a credential-less account and its talent profile in
// one transaction, then mails the set-password link.
func (s *TalentServiceImpl) SubmitAnonymous(req *dto.SubmitTalentRequest, uploads *dto.TalentUploads) (*dto.TalentDTO, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindByEmail(emailAddr); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if !models.IsValidTalentCategory(req.TalentCategory) {
		return nil, apperrors.NewBadRequestError("Unknown talent category: " + req.TalentCategory)
	}

	rawToken, hashedToken, err := auth.GenerateSecureToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:              emailAddr,
		Role:               models.UserRoleTalent,
		IsAnonymous:        true,
		IsActive:           true,
		PasswordSetToken:   hashedToken,
		PasswordSetExpires: tokenExpiry(auth.PasswordSetTokenTTL),
	}

	talent := &models.Talent{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Location:       req.Location,
		DateOfBirth:    parseDate(req.DateOfBirth),
		TalentCategory: req.TalentCategory,
		Bio:            req.Bio,
		Experience:     req.Experience,
	}
	applySpecialties(talent, req.Specialties)
	talent.SetSocialMedia(models.SocialMedia{
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		Website:   req.Website,
	})
	applyUploads(talent, uploads)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		talent.UserID = user.ID
		if err := tx.Create(talent).Error; err != nil {
			return err
		}
		refreshUserMirror(user, talent)
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendPasswordSetInvite(user.Email, talent.FullName(), rawToken)
	s.mailer.SendTalentSubmittedNotice(talent.ID, talent.FullName(), talent.TalentCategory)

	out := dto.NewTalentDTO(talent)
	return &out, nil
}

// UpdateProfile creates or updates the caller's profile. Portfolio and photo
// uploads append; a new identity document replaces the old one and resets the
// review to pending.
func (s *TalentServiceImpl) UpdateProfile(userID string, req *dto.UpdateTalentProfileRequest, uploads *dto.TalentUploads) (*dto.TalentDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("talent", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	talent, err := s.talentRepo.FindByUserID(userID)
	created := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InternalError(err)
		}
		talent = &models.Talent{UserID: userID}
		created = true
	}

	if req.TalentCategory != "" && !models.IsValidTalentCategory(req.TalentCategory) {
		return nil, apperrors.NewBadRequestError("Unknown talent category: " + req.TalentCategory)
	}

	applyProfileUpdates(talent, req)
	ninReplaced := uploads != nil && uploads.NIN != nil
	applyUploads(talent, uploads)
	if ninReplaced {
		// A fresh identity document restarts the review.
		talent.NINVerified = false
		talent.ArconApprovalStatus = models.ApprovalStatusPending
		talent.IsPubliclyVisible = false
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if created {
			if err := tx.Create(talent).Error; err != nil {
				return err
			}
		} else if err := tx.Save(talent).Error; err != nil {
			return err
		}
		refreshUserMirror(user, talent)
		return tx.Save(user).Error
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if ninReplaced {
		s.mailer.SendTalentSubmittedNotice(talent.ID, talent.FullName(), talent.TalentCategory)
	}

	out := dto.NewTalentDTO(talent)
	return &out, nil
}

func (s *TalentServiceImpl) GetOwnProfile(userID string) (*dto.TalentDTO, error) {
	talent, err := s.talentRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewTalentDTO(talent)
	return &out, nil
}

func (s *TalentServiceImpl) ListApproved(query *dto.ApprovedTalentsQuery) ([]dto.TalentDTO, dto.Pagination, error) {
	filter := repositories.TalentFilter{
		ApprovalStatus: models.ApprovalStatusApproved,
		Category:       query.Category,
		Location:       query.Location,
		Search:         query.Search,
		PublicOnly:     true,
		Page:           query.Page,
		PageSize:       query.Limit,
	}

	talents, total, err := s.talentRepo.FindWithFilter(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.TalentDTO, 0, len(talents))
	for i := range talents {
		out = append(out, dto.PublicTalentDTO(&talents[i]))
	}
	return out, dto.NewPagination(query.Page, query.Limit, total), nil
}

// GetByID hides unapproved profiles from everyone except staff and the
// regulator.
func (s *TalentServiceImpl) GetByID(id string, requesterRole models.UserRole) (*dto.TalentDTO, error) {
	talent, err := s.talentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if talent.ArconApprovalStatus != models.ApprovalStatusApproved {
		switch requesterRole {
		case models.UserRoleSuperadmin, models.UserRoleAdmin, models.UserRoleArcon:
		default:
			return nil, apperrors.ErrTalentProfileNotFound
		}
	}

	out := dto.NewTalentDTO(talent)
	return &out, nil
}

func (s *TalentServiceImpl) ReviewApproval(req *dto.ArconApprovalRequest) (*dto.TalentDTO, error) {
	talent, err := s.talentRepo.FindByID(req.TalentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.ApprovalStatus(req.Status)
	if status == models.ApprovalStatusRejected && strings.TrimSpace(req.RejectionReason) == "" {
		return nil, apperrors.ErrRejectionReasonRequired
	}

	talent.ArconApprovalStatus = status
	talent.ArconRejectionReason = ""
	switch status {
	case models.ApprovalStatusApproved:
		now := time.Now()
		talent.ArconApprovalDate = &now
		talent.IsPubliclyVisible = true
		talent.NINVerified = talent.NINDocumentURL != ""
	case models.ApprovalStatusRejected:
		now := time.Now()
		talent.ArconApprovalDate = &now
		talent.IsPubliclyVisible = false
		talent.ArconRejectionReason = req.RejectionReason
	default:
		talent.IsPubliclyVisible = false
	}

	user, err := s.userRepo.FindByID(talent.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(talent).Error; err != nil {
			return err
		}
		if user != nil {
			refreshUserMirror(user, talent)
			return tx.Save(user).Error
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if user != nil && !user.IsAnonymous {
		s.mailer.SendTalentDecision(user.Email, talent.FullName(), string(status), req.RejectionReason)
	}

	out := dto.NewTalentDTO(talent)
	return &out, nil
}

func (s *TalentServiceImpl) GetDocuments(talentID, docType string) (*dto.TalentDocumentsDTO, error) {
	talent, err := s.talentRepo.FindByID(talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	var urls []string
	switch docType {
	case "nin":
		if talent.NINDocumentURL != "" {
			urls = append(urls, talent.NINDocumentURL)
		}
	case "photos":
		for _, photo := range talent.GetPhotos() {
			urls = append(urls, photo.URL)
		}
	default:
		return nil, apperrors.NewBadRequestError("Unknown document type: " + docType)
	}

	if len(urls) == 0 {
		return nil, apperrors.ErrDocumentNotAvailable
	}

	return &dto.TalentDocumentsDTO{TalentID: talentID, Type: docType, URLs: urls}, nil
}

func applySpecialties(talent *models.Talent, raw string) {
	if raw == "" {
		return
	}
	var specialties []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			specialties = append(specialties, s)
		}
	}
	talent.SetSpecialties(specialties)
}

func applyProfileUpdates(talent *models.Talent, req *dto.UpdateTalentProfileRequest) {
	if req.FirstName != "" {
		talent.FirstName = req.FirstName
	}
	if req.LastName != "" {
		talent.LastName = req.LastName
	}
	if req.Phone != "" {
		talent.Phone = req.Phone
	}
	if req.Location != "" {
		talent.Location = req.Location
	}
	if req.DateOfBirth != "" {
		talent.DateOfBirth = parseDate(req.DateOfBirth)
	}
	if req.TalentCategory != "" {
		talent.TalentCategory = req.TalentCategory
	}
	if req.Bio != "" {
		talent.Bio = req.Bio
	}
	if req.Experience != "" {
		talent.Experience = req.Experience
	}
	applySpecialties(talent, req.Specialties)

	if req.Instagram != "" || req.Twitter != "" || req.Website != "" {
		sm := talent.GetSocialMedia()
		if req.Instagram != "" {
			sm.Instagram = req.Instagram
		}
		if req.Twitter != "" {
			sm.Twitter = req.Twitter
		}
		if req.Website != "" {
			sm.Website = req.Website
		}
		talent.SetSocialMedia(sm)
	}
}

func applyUploads(talent *models.Talent, uploads *dto.TalentUploads) {
	if uploads == nil {
		return
	}

	if uploads.NIN != nil {
		talent.NINDocumentURL = uploads.NIN.URL
		talent.NINStorageID = uploads.NIN.StorageID
		talent.NINSubmittedToARCON = true
		now := time.Now()
		talent.NINArconSubmissionDate = &now
	}

	if len(uploads.Photos) > 0 {
		photos := talent.GetPhotos()
		for _, f := range uploads.Photos {
			photos = append(photos, models.Photo{URL: f.URL, StorageID: f.StorageID})
		}
		talent.SetPhotos(photos)
	}

	if len(uploads.Portfolio) > 0 {
		portfolio := talent.GetPortfolio()
		for _, f := range uploads.Portfolio {
			portfolio = append(portfolio, models.MediaItem{
				URL:       f.URL,
				StorageID: f.StorageID,
				Type:      mediaType(f.ContentType),
				Caption:   f.Caption,
			})
		}
		talent.SetPortfolio(portfolio)
	}
}

func mediaType(contentType string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

// refreshUserMirror copies the talent's public fields onto its user row.
// The mirror is a read convenience, never authoritative.
func refreshUserMirror(user *models.User, talent *models.Talent) {
	user.FirstName = talent.FirstName
	user.LastName = talent.LastName
	user.Name = talent.FullName()
	user.Phone = talent.Phone
	user.Location = talent.Location
	user.TalentCategory = talent.TalentCategory
	user.Bio = talent.Bio
	user.ApprovalStatus = talent.ArconApprovalStatus
	user.IsPubliclyVisible = talent.IsPubliclyVisible
	user.Rating = talent.Rating
}
