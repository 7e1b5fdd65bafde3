package invitation_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/sevginserbest/portal/internal/auth"
	appDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/app"
	invitationDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/invitation"
	userDatamodel "github.com/sevginserbest/portal/internal/core/datamodel/user"
	"github.com/sevginserbest/portal/internal/email"
	"github.com/sevginserbest/portal/internal/invitation"
	invitationPostgres "github.com/sevginserbest/portal/internal/invitation/postgres"
	"github.com/sevginserbest/portal/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Invitation Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    invitation.RepositoryAPI
		service *invitation.Service
		handler *invitation.Handler
		router  chi.Router
		slogger *slog.Logger
	)

	superAdmin := &auth.Principal{
		ID:    "admin-1",
		Email: "admin@example.com",
		Role:  auth.RoleSuperAdmin,
	}

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

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
		service = invitation.NewService(repo, email.NewNoopSender(slogger), slogger,
			"https://portal.example.com", 7*24*time.Hour, bcrypt.MinCost)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = invitation.NewHandler(baseHandler, service)

		router = chi.NewRouter()
		router.Get("/invitations/{token}", handler.GetInvitation)
		router.Post("/invitations/{token}/accept", handler.AcceptInvitation)
		router.Post("/invitations", func(w http.ResponseWriter, r *http.Request) {
			handler.CreateInvitation(w, r.WithContext(auth.ContextWithPrincipal(r.Context(), superAdmin)))
		})
	})

	createInvitation := func(addr string) *invitation.Invitation {
		inv, err := service.Create(superAdmin, invitation.CreateInvitationDTO{Email: addr})
		Expect(err).NotTo(HaveOccurred())
		return inv
	}

	It("should create an invitation over HTTP", func() {
		body := strings.NewReader(`{"email":"client@example.com","app_ids":[]}`)
		req := httptest.NewRequest(http.MethodPost, "/invitations", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var created invitation.Invitation
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.Email).To(Equal("client@example.com"))

		// The token never appears in responses; only the email carries it.
		var row invitationDatamodel.Invitation
		Expect(db.First(&row, "email = ?", "client@example.com").Error).To(Succeed())
		Expect(row.Token).To(HaveLen(64))
	})

	It("should preview a valid token", func() {
		inv := createInvitation("client@example.com")

		req := httptest.NewRequest(http.MethodGet, "/invitations/"+inv.Token, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var preview invitation.Preview
		Expect(json.NewDecoder(w.Body).Decode(&preview)).To(Succeed())
		Expect(preview.Email).To(Equal("client@example.com"))
	})

	It("should answer an unknown token with the generic invalid response", func() {
		req := httptest.NewRequest(http.MethodGet, "/invitations/deadbeef", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("INVALID_OR_EXPIRED"))
	})

	It("should accept an invitation and create the account", func() {
		inv := createInvitation("client@example.com")

		body := strings.NewReader(`{"name":"Client","password":"longenough"}`)
		req := httptest.NewRequest(http.MethodPost, "/invitations/"+inv.Token+"/accept", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))

		var user userDatamodel.User
		Expect(db.First(&user, "email = ?", "client@example.com").Error).To(Succeed())
		Expect(user.Role).To(Equal(string(auth.RoleViewer)))
	})

	It("should refuse accepting the same token twice", func() {
		inv := createInvitation("client@example.com")

		body := `{"name":"Client","password":"longenough"}`
		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/invitations/"+inv.Token+"/accept", strings.NewReader(body)))
		Expect(first.Code).To(Equal(http.StatusCreated))

		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/invitations/"+inv.Token+"/accept", strings.NewReader(body)))
		Expect(second.Code).To(Equal(http.StatusGone))
		Expect(second.Body.String()).To(ContainSubstring("ALREADY_USED"))
	})

	It("should reject a short password", func() {
		inv := createInvitation("client@example.com")

		body := strings.NewReader(`{"name":"Client","password":"short"}`)
		req := httptest.NewRequest(http.MethodPost, "/invitations/"+inv.Token+"/accept", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
