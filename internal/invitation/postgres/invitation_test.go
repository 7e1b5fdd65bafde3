package postgres_test

import (
	"testing"
	"time"

	"github.com/sevginserbest/portal/internal"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	invitationDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/invitation"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"github.com/sevginserbest/portal/internal/invitation"
	invitationPostgres "github.com/sevginserbest/portal/internal/invitation/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInvitationPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Invitation Postgres Suite")
}

var _ = Describe("Invitation Repository", func() {
	var (
		db   *gorm.DB
		repo invitation.RepositoryAPI
		now  time.Time
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&userDatamodel.User{},
			&invitationDatamodel.Invitation{},
			&appDatamodel.App{},
			&appDatamodel.UserApp{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = invitationPostgres.NewInvitationRepository(db)
		now = time.Now().UTC().Truncate(time.Second)
	})

	createInvitation := func(email, token string, expiresAt time.Time) *invitation.Invitation {
		inv := &invitation.Invitation{
			Email:       email,
			Token:       token,
			AppIDs:      []string{},
			ExpiresAt:   expiresAt,
			InvitedByID: "admin-1",
			CreatedAt:   now,
		}
		Expect(repo.Create(inv)).To(Succeed())
		return inv
	}

	Describe("Create and GetByToken", func() {
		It("should round-trip the invitation including its app id set", func() {
			inv := &invitation.Invitation{
				Email:       "client@example.com",
				Token:       "tok-1",
				AppIDs:      []string{"app-a", "app-b"},
				ExpiresAt:   now.Add(7 * 24 * time.Hour),
				InvitedByID: "admin-1",
				CreatedAt:   now,
			}
			Expect(repo.Create(inv)).To(Succeed())
			Expect(inv.ID).NotTo(BeEmpty())

			found, err := repo.GetByToken("tok-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.Email).To(Equal("client@example.com"))
			Expect(found.AppIDs).To(Equal([]string{"app-a", "app-b"}))
			Expect(found.UsedAt).To(BeNil())
		})

		It("should return nil without error for an unknown token", func() {
			found, err := repo.GetByToken("missing")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("GetPendingByEmail", func() {
		It("should return the newest unused invitation", func() {
			createInvitation("client@example.com", "tok-old", now.Add(time.Hour))
			newer := &invitation.Invitation{
				Email:       "client@example.com",
				Token:       "tok-new",
				AppIDs:      []string{},
				ExpiresAt:   now.Add(time.Hour),
				InvitedByID: "admin-1",
				CreatedAt:   now.Add(time.Minute),
			}
			Expect(repo.Create(newer)).To(Succeed())

			found, err := repo.GetPendingByEmail("client@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.Token).To(Equal("tok-new"))
		})

		It("should skip used invitations", func() {
			inv := createInvitation("client@example.com", "tok-1", now.Add(time.Hour))
			accepted := &invitation.AcceptedUser{
				Email:        "client@example.com",
				Name:         "Client",
				PasswordHash: "hash",
				Role:         "VIEWER",
				Permissions:  "[]",
			}
			Expect(repo.Accept(inv.ID, accepted, nil, now)).To(Succeed())

			found, err := repo.GetPendingByEmail("client@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("ListPending", func() {
		It("should return only unused, unexpired invitations", func() {
			createInvitation("expired@example.com", "tok-expired", now.Add(-time.Hour))
			createInvitation("open@example.com", "tok-open", now.Add(time.Hour))

			pending, err := repo.ListPending(now)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].Email).To(Equal("open@example.com"))
		})
	})

	Describe("UserExistsByEmail", func() {
		It("should report existing accounts", func() {
			u := &userDatamodel.User{Email: "client@example.com", Password: "x", Role: "VIEWER", Permissions: "[]"}
			Expect(db.Create(u).Error).To(Succeed())

			exists, err := repo.UserExistsByEmail("client@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = repo.UserExistsByEmail("other@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("Accept", func() {
		var accepted *invitation.AcceptedUser

		BeforeEach(func() {
			accepted = &invitation.AcceptedUser{
				Email:        "client@example.com",
				Name:         "Client",
				PasswordHash: "hash",
				Role:         "VIEWER",
				Permissions:  "[]",
			}
		})

		It("should mark the invitation used and create the account with grants", func() {
			inv := createInvitation("client@example.com", "tok-1", now.Add(time.Hour))
			appRow := &appDatamodel.App{Name: "Docs", Slug: "docs", Type: "internal"}
			Expect(db.Create(appRow).Error).To(Succeed())

			Expect(repo.Accept(inv.ID, accepted, []string{appRow.ID}, now)).To(Succeed())

			var dm invitationDatamodel.Invitation
			Expect(db.First(&dm, "id = ?", inv.ID).Error).To(Succeed())
			Expect(dm.UsedAt).NotTo(BeNil())

			var user userDatamodel.User
			Expect(db.First(&user, "email = ?", "client@example.com").Error).To(Succeed())
			Expect(user.Role).To(Equal("VIEWER"))

			var grants []appDatamodel.UserApp
			Expect(db.Where("user_id = ?", user.ID).Find(&grants).Error).To(Succeed())
			Expect(grants).To(HaveLen(1))
			Expect(grants[0].AppID).To(Equal(appRow.ID))
		})

		It("should refuse a second acceptance of the same invitation", func() {
			inv := createInvitation("client@example.com", "tok-1", now.Add(time.Hour))
			Expect(repo.Accept(inv.ID, accepted, nil, now)).To(Succeed())

			again := &invitation.AcceptedUser{
				Email:        "other@example.com",
				Name:         "Other",
				PasswordHash: "hash",
				Role:         "VIEWER",
				Permissions:  "[]",
			}
			err := repo.Accept(inv.ID, again, nil, now)
			Expect(err).To(Equal(internal.ErrInvitationUsed))

			var count int64
			Expect(db.Model(&userDatamodel.User{}).Where("email = ?", "other@example.com").Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("should roll back the used_at flip when the account already exists", func() {
			inv := createInvitation("client@example.com", "tok-1", now.Add(time.Hour))
			u := &userDatamodel.User{Email: "client@example.com", Password: "x", Role: "VIEWER", Permissions: "[]"}
			Expect(db.Create(u).Error).To(Succeed())

			err := repo.Accept(inv.ID, accepted, nil, now)
			Expect(err).To(Equal(internal.ErrAccountExists))

			var dm invitationDatamodel.Invitation
			Expect(db.First(&dm, "id = ?", inv.ID).Error).To(Succeed())
			Expect(dm.UsedAt).To(BeNil())
		})
	})
})
