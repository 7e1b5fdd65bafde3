package user

import (
	"log/slog"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/auth"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByID(id string) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
	Update(user *userDatamodel.User) error
	Delete(id string) error
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) GetAllUsers() ([]*User, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}
	users := make([]*User, 0, len(rows))
	for _, row := range rows {
		users = append(users, FromDataModel(row))
	}
	return users, nil
}

func (s *Service) GetUser(id string) (*User, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(row), nil
}

// CreateUser provisions an account directly. When the caller sends no
// explicit permission set, the role's defaults apply.
func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	email := auth.NormalizeEmail(dto.Email)
	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	permissions := dto.Permissions
	if permissions == nil {
		permissions = auth.DefaultPermissions(dto.Role)
	}

	row := &userDatamodel.User{
		Email:       email,
		Name:        dto.Name,
		Password:    hash,
		Role:        string(dto.Role),
		Permissions: auth.SerializePermissions(permissions),
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create user", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("user created", "user_id", row.ID, "role", row.Role)
	return FromDataModel(row), nil
}

func (s *Service) UpdateUser(id string, dto UpdateUserDTO) (*User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil {
		email := auth.NormalizeEmail(*dto.Email)
		if email != row.Email {
			if err := s.checkEmailFree(email); err != nil {
				return nil, err
			}
		}
		row.Email = email
	}
	if dto.Name != nil {
		row.Name = dto.Name
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := auth.HashPassword(*dto.Password, s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		row.Password = hash
	}
	if dto.Role != nil {
		row.Role = string(*dto.Role)
	}
	if dto.Permissions != nil {
		row.Permissions = auth.SerializePermissions(dto.Permissions)
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	return FromDataModel(row), nil
}

// DeleteUser removes the account together with its app grants.
func (s *Service) DeleteUser(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete user", "user_id", id, "error", err)
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// UpdateProfile is the self-service edit. A password change must prove
// knowledge of the current password first.
func (s *Service) UpdateProfile(principalID string, dto UpdateProfileDTO) (*User, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	row, err := s.repo.GetByID(principalID)
	if err != nil {
		return nil, err
	}

	if dto.NewPassword != nil && *dto.NewPassword != "" {
		if dto.CurrentPassword == nil ||
			auth.VerifyPassword(row.Password, *dto.CurrentPassword) != nil {
			return nil, internal.ErrWrongPassword
		}
		hash, err := auth.HashPassword(*dto.NewPassword, s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		row.Password = hash
	}

	if dto.Email != nil {
		email := auth.NormalizeEmail(*dto.Email)
		if email != row.Email {
			if err := s.checkEmailFree(email); err != nil {
				return nil, err
			}
			row.Email = email
		}
	}
	if dto.Name != nil {
		row.Name = dto.Name
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update profile", "user_id", principalID, "error", err)
		return nil, err
	}
	return FromDataModel(row), nil
}

func (s *Service) checkEmailFree(email string) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return internal.NewInternalError("failed to check email", err)
	}
	if existing != nil {
		return internal.ErrEmailTaken
	}
	return nil
}
