package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/auth"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/email"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/models"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/repositories"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(token string) error
	SetPassword(req *dto.SetPasswordRequest) (*dto.AuthResponse, error)
	ForgotPassword(email string) error
	ResetPassword(req *dto.ResetPasswordRequest) error
	GetMe(userID string) (*dto.UserDTO, error)
	UpdatePassword(userID string, req *dto.UpdatePasswordRequest) error
}

type AuthServiceImpl struct {
	db         *gorm.DB
	userRepo   repositories.UserRepository
	clientRepo repositories.ClientRepository
	mailer     *email.Mailer
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, clientRepo repositories.ClientRepository, mailer *email.Mailer) AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		clientRepo: clientRepo,
		mailer:     mailer,
	}
}

func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
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

	rawToken, hashedToken, err := auth.GenerateSecureToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	verificationExpiry := tokenExpiry(auth.EmailVerificationTokenTTL)

	user := &models.User{
		Email:                    emailAddr,
		PasswordHash:             hash,
		Role:                     req.Role,
		IsActive:                 true,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Name:                     strings.TrimSpace(req.FirstName + " " + req.LastName),
		Phone:                    req.Phone,
		EmailVerificationToken:   hashedToken,
		EmailVerificationExpires: verificationExpiry,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if req.Role == models.UserRoleClient {
			client := &models.Client{
				UserID:      user.ID,
				CompanyName: req.CompanyName,
			}
			client.SetContactPerson(models.ContactPerson{
				Name:  user.Name,
				Phone: req.Phone,
				Email: emailAddr,
			})
			if err := tx.Create(client).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendEmailVerification(user.Email, user.FullName(), rawToken)

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsAnonymous || !user.HasPassword() {
		return nil, apperrors.ErrPasswordNotSet
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountInactive
	}
	if !user.IsEmailVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationTokenHash(auth.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = ""
	user.EmailVerificationExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.mailer.SendWelcome(user.Email, user.FullName())
	return nil
}

// SetPassword completes an anonymous talent signup: the mailed token proves
// ownership of the address, so the email is considered verified too.
func (s *AuthServiceImpl) SetPassword(req *dto.SetPasswordRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindBySetTokenHash(auth.HashToken(req.Token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.IsAnonymous = false
	user.IsEmailVerified = true
	user.PasswordSetToken = ""
	user.PasswordSetExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.mailer.SendWelcome(user.Email, user.FullName())

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(user)}, nil
}

// ForgotPassword never reveals whether the address exists.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	rawToken, hashedToken, err := auth.GenerateSecureToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordResetToken = hashedToken
	user.PasswordResetExpires = tokenExpiry(auth.PasswordResetTokenTTL)
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.mailer.SendPasswordReset(user.Email, user.FullName(), rawToken)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetTokenHash(auth.HashToken(req.Token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) GetMe(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	out := dto.NewUserDTO(user)
	return &out, nil
}

func (s *AuthServiceImpl) UpdatePassword(userID string, req *dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("auth", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
