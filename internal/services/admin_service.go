package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/auth"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type AdminService interface {
	ListUsers(query *dto.AdminUsersQuery) ([]dto.UserDTO, dto.Pagination, error)
	GetUser(userID string) (*dto.UserDTO, error)
	UpdateUserStatus(req *dto.UpdateUserStatusRequest) (*dto.UserDTO, error)
	CreateStaffUser(req *dto.CreateStaffUserRequest) (*dto.UserDTO, error)
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

func (s *AdminServiceImpl) ListUsers(query *dto.AdminUsersQuery) ([]dto.UserDTO, dto.Pagination, error) {
	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		IsActive: query.IsActive,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserDTO(&users[i]))
	}
	return out, dto.NewPagination(query.Page, query.Limit, total), nil
}

func (s *AdminServiceImpl) GetUser(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admin", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	out := dto.NewUserDTO(user)
	return &out, nil
}

func (s *AdminServiceImpl) UpdateUserStatus(req *dto.UpdateUserStatusRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("admin", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleSuperadmin {
		return nil, apperrors.NewForbiddenError("Superadmin accounts cannot be deactivated")
	}

	if err := s.userRepo.SetActive(user.ID, req.IsActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsActive = req.IsActive

	out := dto.NewUserDTO(user)
	return &out, nil
}

// CreateStaffUser provisions admin and regulator accounts. Staff accounts
// skip email verification.
func (s *AdminServiceImpl) CreateStaffUser(req *dto.CreateStaffUserRequest) (*dto.UserDTO, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindByEmail(emailAddr); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:           emailAddr,
		PasswordHash:    hash,
		Role:            req.Role,
		IsActive:        true,
		IsEmailVerified: true,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Name:            strings.TrimSpace(req.FirstName + " " + req.LastName),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewUserDTO(user)
	return &out, nil
}
