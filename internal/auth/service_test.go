package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock account repository for testing
type mockAccountRepository struct {
	byEmail       map[string]*Account
	byID          map[string]*Account
	returnError   bool
	errorToReturn error
}

func newMockAccountRepository() *mockAccountRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	editorName := "Edith Editor"
	accounts := []*Account{
		{
			ID:          "u-admin",
			Email:       "admin@example.com",
			Password:    string(hashedPassword),
			Role:        string(RoleSuperAdmin),
			Permissions: `["portfolio","skills","experience","pages","settings"]`,
		},
		{
			ID:          "u-editor",
			Email:       "editor@example.com",
			Name:        &editorName,
			Password:    string(hashedPassword),
			Role:        string(RoleEditor),
			Permissions: `["portfolio","skills","experience"]`,
		},
		{
			ID:          "u-viewer",
			Email:       "viewer@example.com",
			Password:    string(hashedPassword),
			Role:        string(RoleViewer),
			Permissions: `[]`,
		},
	}

	m := &mockAccountRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[string]*Account),
	}
	for _, a := range accounts {
		m.byEmail[a.Email] = a
		m.byID[a.ID] = a
	}
	return m
}

func (m *mockAccountRepository) GetByEmail(email string) (*Account, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if a, ok := m.byEmail[email]; ok {
		return a, nil
	}
	return nil, ErrInvalidCredentials
}

func (m *mockAccountRepository) GetByID(id string) (*Account, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if a, ok := m.byID[id]; ok {
		return a, nil
	}
	return nil, ErrInvalidToken
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service       *Service
		mockRepo      *mockAccountRepository
		tokenGen      *JWTTokenGenerator
		accessSecret  string        = "test-access-secret"
		refreshSecret string        = "test-refresh-secret"
		accessTTL     time.Duration = 15 * time.Minute
		refreshTTL    time.Duration = 24 * time.Hour
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockAccountRepository()
		tokenGen = NewJWTTokenGenerator(accessSecret, refreshSecret, accessTTL, refreshTTL)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return access and refresh tokens", func() {
				// Given
				dto := LoginDTO{
					Email:    "editor@example.com",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
			})

			ginkgo.It("should embed the full principal in the access token", func() {
				// Given
				dto := LoginDTO{
					Email:    "editor@example.com",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("u-editor"))
				gomega.Expect(claims.Email).To(gomega.Equal("editor@example.com"))
				gomega.Expect(claims.Role).To(gomega.Equal(string(RoleEditor)))
				gomega.Expect(claims.Permissions).To(gomega.ConsistOf("portfolio", "skills", "experience"))
			})

			ginkgo.It("should normalize the email before lookup", func() {
				// Given
				dto := LoginDTO{
					Email:    "  Editor@Example.COM ",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the same error for an unknown email", func() {
				// Given
				dto := LoginDTO{
					Email:    "nonexistent@example.com",
					Password: "any_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return the same error for a wrong password", func() {
				// Given
				dto := LoginDTO{
					Email:    "editor@example.com",
					Password: "wrong_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should return validation error for empty email", func() {
				// Given
				dto := LoginDTO{Email: "", Password: "password"}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("email is required"))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return validation error for empty password", func() {
				// Given
				dto := LoginDTO{Email: "editor@example.com", Password: ""}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a new pair for a valid refresh token", func() {
			// Given
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "viewer@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			refreshed, err := service.RefreshTokens(tokens.RefreshToken)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should pick up role changes made since login", func() {
			// Given
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "viewer@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockRepo.byID["u-viewer"].Role = string(RoleEditor)
			mockRepo.byID["u-viewer"].Permissions = `["portfolio"]`

			// When
			refreshed, err := service.RefreshTokens(tokens.RefreshToken)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			claims, err := service.ValidateAccessToken(refreshed.AccessToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.Role).To(gomega.Equal(string(RoleEditor)))
			gomega.Expect(claims.Permissions).To(gomega.ConsistOf("portfolio"))
		})

		ginkgo.It("should reject an access token used as a refresh token", func() {
			// Given
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "viewer@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			_, err = service.RefreshTokens(tokens.AccessToken)

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a garbage token", func() {
			// When
			_, err := service.RefreshTokens("not-a-token")

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should fail when the account no longer exists", func() {
			// Given
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "viewer@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			delete(mockRepo.byID, "u-viewer")

			// When
			_, err = service.RefreshTokens(tokens.RefreshToken)

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject a token signed with the wrong secret", func() {
			// Given
			otherGen := NewJWTTokenGenerator("other-access-secret", refreshSecret, accessTTL, refreshTTL)
			token, err := otherGen.GenerateAccessToken(&Principal{ID: "u-x", Email: "x@example.com"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			_, err = service.ValidateAccessToken(token)

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("GenerateRandomToken", func() {
		ginkgo.It("should produce unique 64 character hex strings", func() {
			// When
			first, err := GenerateRandomToken()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := GenerateRandomToken()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// Then
			gomega.Expect(first).To(gomega.HaveLen(64))
			gomega.Expect(first).ToNot(gomega.Equal(second))
		})
	})

	ginkgo.Describe("repository failures", func() {
		ginkgo.It("should map storage errors to invalid credentials", func() {
			// Given
			mockRepo.returnError = true
			mockRepo.errorToReturn = errors.New("connection refused")

			// When
			_, err := service.Authenticate(LoginDTO{
				Email:    "editor@example.com",
				Password: "correct_password",
			})

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
		})
	})
})
