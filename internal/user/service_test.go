package user

import (
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/sevginserbest/portal/internal"
	"github.com/sevginserbest/portal/internal/auth"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepository struct {
	byID        map[string]*userDatamodel.User
	returnError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byID: make(map[string]*userDatamodel.User)}
}

func (m *mockUserRepository) GetAll() ([]*userDatamodel.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	rows := make([]*userDatamodel.User, 0, len(m.byID))
	for _, row := range m.byID {
		rows = append(rows, row)
	}
	return rows, nil
}

func (m *mockUserRepository) GetByID(id string) (*userDatamodel.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	row, ok := m.byID[id]
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return row, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	for _, row := range m.byID {
		if row.Email == email {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Create(row *userDatamodel.User) error {
	if m.returnError != nil {
		return m.returnError
	}
	row.ID = "u-" + row.Email
	m.byID[row.ID] = row
	return nil
}

func (m *mockUserRepository) Update(row *userDatamodel.User) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.byID[row.ID] = row
	return nil
}

func (m *mockUserRepository) Delete(id string) error {
	if m.returnError != nil {
		return m.returnError
	}
	delete(m.byID, id)
	return nil
}

var _ = ginkgo.Describe("User Service", func() {
	var (
		mockRepo *mockUserRepository
		service  *Service
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(mockRepo, bcrypt.MinCost, logger)
	})

	seedUser := func(email, password string, role auth.Role) *userDatamodel.User {
		hash, err := auth.HashPassword(password, bcrypt.MinCost)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		row := &userDatamodel.User{
			Email:       email,
			Password:    hash,
			Role:        string(role),
			Permissions: auth.SerializePermissions(auth.DefaultPermissions(role)),
		}
		gomega.Expect(mockRepo.Create(row)).To(gomega.Succeed())
		return row
	}

	ginkgo.Describe("CreateUser", func() {
		ginkgo.It("should hash the password and default the permissions from the role", func() {
			// Given: a create payload without an explicit permission set
			dto := CreateUserDTO{
				Email:    "Editor@Example.com ",
				Password: "longenough",
				Role:     auth.RoleEditor,
			}

			// When: the account is created
			created, err := service.CreateUser(dto)

			// Then: the email is normalized and the role defaults apply
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.Email).To(gomega.Equal("editor@example.com"))
			gomega.Expect(created.Permissions).To(gomega.Equal(auth.DefaultPermissions(auth.RoleEditor)))

			stored := mockRepo.byID[created.ID]
			gomega.Expect(stored.Password).NotTo(gomega.Equal("longenough"))
			gomega.Expect(auth.VerifyPassword(stored.Password, "longenough")).To(gomega.Succeed())
		})

		ginkgo.It("should keep an explicit permission set", func() {
			dto := CreateUserDTO{
				Email:       "viewer@example.com",
				Password:    "longenough",
				Role:        auth.RoleViewer,
				Permissions: []string{"portfolio"},
			}

			created, err := service.CreateUser(dto)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.Permissions).To(gomega.Equal([]string{"portfolio"}))
		})

		ginkgo.It("should reject a short password", func() {
			dto := CreateUserDTO{Email: "a@example.com", Password: "short", Role: auth.RoleViewer}

			_, err := service.CreateUser(dto)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})
	})

	ginkgo.Describe("UpdateUser", func() {
		ginkgo.It("should refuse an email already owned by someone else", func() {
			seedUser("taken@example.com", "password1", auth.RoleViewer)
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)

			email := "taken@example.com"
			_, err := service.UpdateUser(target.ID, UpdateUserDTO{Email: &email})
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailTaken))
		})

		ginkgo.It("should leave the password hash alone when none is sent", func() {
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)
			before := target.Password

			name := "New Name"
			_, err := service.UpdateUser(target.ID, UpdateUserDTO{Name: &name})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(mockRepo.byID[target.ID].Password).To(gomega.Equal(before))
		})

		ginkgo.It("should change the role and permissions together", func() {
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)

			role := auth.RoleEditor
			updated, err := service.UpdateUser(target.ID, UpdateUserDTO{
				Role:        &role,
				Permissions: []string{"pages", "settings"},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Role).To(gomega.Equal(auth.RoleEditor))
			gomega.Expect(updated.Permissions).To(gomega.Equal([]string{"pages", "settings"}))
		})
	})

	ginkgo.Describe("UpdateProfile", func() {
		ginkgo.It("should require the current password for a password change", func() {
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)

			newPassword := "password2"
			_, err := service.UpdateProfile(target.ID, UpdateProfileDTO{NewPassword: &newPassword})
			gomega.Expect(err).To(gomega.Equal(internal.ErrWrongPassword))

			wrong := "not-the-password"
			_, err = service.UpdateProfile(target.ID, UpdateProfileDTO{
				CurrentPassword: &wrong,
				NewPassword:     &newPassword,
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrWrongPassword))
		})

		ginkgo.It("should change the password when the current one matches", func() {
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)

			current := "password1"
			newPassword := "password2"
			_, err := service.UpdateProfile(target.ID, UpdateProfileDTO{
				CurrentPassword: &current,
				NewPassword:     &newPassword,
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(auth.VerifyPassword(mockRepo.byID[target.ID].Password, "password2")).To(gomega.Succeed())
		})

		ginkgo.It("should update name and email without touching the password", func() {
			target := seedUser("mine@example.com", "password1", auth.RoleViewer)
			before := target.Password

			name := "Sevgin"
			email := "New@Example.com"
			updated, err := service.UpdateProfile(target.ID, UpdateProfileDTO{Name: &name, Email: &email})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(*updated.Name).To(gomega.Equal("Sevgin"))
			gomega.Expect(updated.Email).To(gomega.Equal("new@example.com"))
			gomega.Expect(mockRepo.byID[target.ID].Password).To(gomega.Equal(before))
		})
	})

	ginkgo.Describe("DeleteUser", func() {
		ginkgo.It("should return not found for an unknown id", func() {
			err := service.DeleteUser("missing")
			gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
		})
	})
})
