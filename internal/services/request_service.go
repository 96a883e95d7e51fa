package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type RequestService interface {
	Create(clientUserID string, req *dto.CreateRequestRequest) (*dto.RequestDTO, error)
	ListForClient(clientUserID string, query *dto.RequestListQuery) ([]dto.RequestDTO, dto.Pagination, error)
	ListForTalent(talentUserID string, query *dto.RequestListQuery) ([]dto.RequestDTO, dto.Pagination, error)
	GetByID(id, userID string, role models.UserRole) (*dto.RequestDTO, error)
	Respond(requestID, talentUserID string, req *dto.RespondToRequestRequest) (*dto.RequestDTO, error)
	Cancel(requestID, clientUserID string) error
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	clientRepo  repositories.ClientRepository
	talentRepo  repositories.TalentRepository
	userRepo    repositories.UserRepository
	mailer      *email.Mailer
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	clientRepo repositories.ClientRepository,
	talentRepo repositories.TalentRepository,
	userRepo repositories.UserRepository,
	mailer *email.Mailer,
) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		clientRepo:  clientRepo,
		talentRepo:  talentRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

func (s *RequestServiceImpl) Create(clientUserID string, req *dto.CreateRequestRequest) (*dto.RequestDTO, error) {
	client, err := s.clientRepo.FindByUserID(clientUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	talent, err := s.talentRepo.FindByUserID(req.TalentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTalentProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if talent.ArconApprovalStatus != models.ApprovalStatusApproved {
		return nil, apperrors.ErrTalentNotApproved
	}

	currency := req.BudgetCurrency
	if currency == "" {
		currency = "NGN"
	}

	request := &models.Request{
		ClientUserID:       clientUserID,
		TalentUserID:       talent.UserID,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		BudgetAmount:       req.BudgetAmount,
		BudgetCurrency:     currency,
		TimelineStart:      parseDate(req.TimelineStart),
		TimelineEnd:        parseDate(req.TimelineEnd),
		ClientNotes:        req.ClientNotes,
		Status:             models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if talentUser, err := s.userRepo.FindByID(talent.UserID); err == nil && !talentUser.IsAnonymous {
		s.mailer.SendRequestReceived(talentUser.Email, talent.FullName(), client.CompanyName,
			request.ProjectTitle, request.BudgetAmount)
	}

	out := dto.NewRequestDTO(request)
	return &out, nil
}

func (s *RequestServiceImpl) ListForClient(clientUserID string, query *dto.RequestListQuery) ([]dto.RequestDTO, dto.Pagination, error) {
	requests, total, err := s.requestRepo.FindByClient(clientUserID, models.RequestStatus(query.Status), query.Page, query.Limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewRequestDTOs(requests), dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *RequestServiceImpl) ListForTalent(talentUserID string, query *dto.RequestListQuery) ([]dto.RequestDTO, dto.Pagination, error) {
	requests, total, err := s.requestRepo.FindByTalent(talentUserID, models.RequestStatus(query.Status), query.Page, query.Limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewRequestDTOs(requests), dto.NewPagination(query.Page, query.Limit, total), nil
}

// GetByID allows the two parties and staff; anyone else is forbidden.
func (s *RequestServiceImpl) GetByID(id, userID string, role models.UserRole) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("request", "Request not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if request.ClientUserID != userID && request.TalentUserID != userID &&
		role != models.UserRoleAdmin && role != models.UserRoleSuperadmin {
		return nil, apperrors.NewForbiddenError("Not authorized to view this request")
	}

	out := dto.NewRequestDTO(request)
	return &out, nil
}

func (s *RequestServiceImpl) Respond(requestID, talentUserID string, req *dto.RespondToRequestRequest) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("request", "Request not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if request.TalentUserID != talentUserID {
		return nil, apperrors.NewForbiddenError("Only the requested talent can respond")
	}

	status := models.RequestStatus(req.Decision)
	resolved, err := s.requestRepo.ResolvePending(requestID, status, req.Decision, req.Message)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !resolved {
		return nil, apperrors.ErrRequestAlreadyResolved
	}

	request, err = s.requestRepo.FindByID(requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyClient(request, req.Decision, req.Message)

	out := dto.NewRequestDTO(request)
	return &out, nil
}

func (s *RequestServiceImpl) Cancel(requestID, clientUserID string) error {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("request", "Request not found")
		}
		return apperrors.InternalError(err)
	}

	if request.ClientUserID != clientUserID {
		return apperrors.NewForbiddenError("Only the requesting client can cancel")
	}

	resolved, err := s.requestRepo.ResolvePending(requestID, models.RequestStatusCancelled, "", "")
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !resolved {
		return apperrors.ErrRequestAlreadyResolved
	}
	return nil
}

func (s *RequestServiceImpl) notifyClient(request *models.Request, decision, message string) {
	clientUser, err := s.userRepo.FindByID(request.ClientUserID)
	if err != nil {
		return
	}
	talentName := ""
	if talent, err := s.talentRepo.FindByUserID(request.TalentUserID); err == nil {
		talentName = talent.FullName()
	}
	s.mailer.SendRequestResponded(clientUser.Email, clientUser.FullName(), talentName,
		request.ProjectTitle, decision, message)
}
