package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type ContactService interface {
	Create(req *dto.CreateContactRequest) (*dto.ContactDTO, error)
	List(query *dto.ContactListQuery) ([]dto.ContactDTO, dto.Pagination, error)
	GetByID(id string) (*dto.ContactDTO, error)
	UpdateStatus(id string, req *dto.UpdateContactStatusRequest, actorID string) (*dto.ContactDTO, error)
	AddNote(id string, req *dto.AddContactNoteRequest, actorEmail string) (*dto.ContactDTO, error)
	Respond(id string, req *dto.RespondToContactRequest, actorEmail string) (*dto.ContactDTO, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	mailer      *email.Mailer
}

func NewContactService(contactRepo repositories.ContactRepository, mailer *email.Mailer) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo, mailer: mailer}
}

func (s *ContactServiceImpl) Create(req *dto.CreateContactRequest) (*dto.ContactDTO, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Reason:  req.Reason,
		Status:  models.ContactStatusNew,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendContactConfirmation(contact.Email, contact.Name, contact.Subject)
	s.mailer.SendContactAdminNotice(contact.Name, contact.Email, contact.Subject, contact.Message)

	out := dto.NewContactDTO(contact)
	return &out, nil
}

func (s *ContactServiceImpl) List(query *dto.ContactListQuery) ([]dto.ContactDTO, dto.Pagination, error) {
	contacts, total, err := s.contactRepo.FindWithFilter(models.ContactStatus(query.Status), query.Page, query.Limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewContactDTOs(contacts), dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *ContactServiceImpl) GetByID(id string) (*dto.ContactDTO, error) {
	contact, err := s.find(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewContactDTO(contact)
	return &out, nil
}

func (s *ContactServiceImpl) UpdateStatus(id string, req *dto.UpdateContactStatusRequest, actorID string) (*dto.ContactDTO, error) {
	contact, err := s.find(id)
	if err != nil {
		return nil, err
	}

	contact.Status = models.ContactStatus(req.Status)
	if contact.AssignedToID == nil && actorID != "" {
		contact.AssignedToID = &actorID
	}
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewContactDTO(contact)
	return &out, nil
}

func (s *ContactServiceImpl) AddNote(id string, req *dto.AddContactNoteRequest, actorEmail string) (*dto.ContactDTO, error) {
	contact, err := s.find(id)
	if err != nil {
		return nil, err
	}

	contact.AppendInternalNote(models.ContactNote{
		Note:    req.Note,
		AddedBy: actorEmail,
		AddedAt: time.Now(),
	})
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewContactDTO(contact)
	return &out, nil
}

// Respond emails the submitter and records the reply in the log.
func (s *ContactServiceImpl) Respond(id string, req *dto.RespondToContactRequest, actorEmail string) (*dto.ContactDTO, error) {
	contact, err := s.find(id)
	if err != nil {
		return nil, err
	}

	contact.AppendResponse(models.ContactResponse{
		Message: req.Message,
		SentBy:  actorEmail,
		SentAt:  time.Now(),
	})
	if contact.Status == models.ContactStatusNew {
		contact.Status = models.ContactStatusInProgress
	}
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendContactConfirmation(contact.Email, contact.Name, contact.Subject)

	out := dto.NewContactDTO(contact)
	return &out, nil
}

func (s *ContactServiceImpl) find(id string) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("contact", "Contact message not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return contact, nil
}
