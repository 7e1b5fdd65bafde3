package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey string

const ContextPrincipalKey ctxKey = "principal"

// Principal is the authenticated identity and its authorization attributes.
// It is minted at login from the user row and carried in the session token;
// core operations that need authorization context take it as an explicit
// argument instead of reading ambient session state.
type Principal struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// Account is the credential projection of a user row used by this package.
type Account struct {
	ID          string
	Email       string
	Name        *string
	Password    string
	Role        string
	Permissions string
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ContextPrincipalKey).(*Principal)
	return p, ok
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	GetByEmail(email string) (*Account, error)
	GetByID(id string) (*Account, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(p *Principal) (token string, err error)
	GenerateRefreshToken(p *Principal) (token string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims are the session token claims. Role and permissions are captured at
// login time; a refresh re-reads the user row, so stale claims live at most
// one access-token lifetime after an admin edit.
type Claims struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

func (c *Claims) Principal() *Principal {
	return &Principal{
		ID:          c.UserID,
		Email:       c.Email,
		Name:        c.Name,
		Role:        Role(c.Role),
		Permissions: c.Permissions,
	}
}

func (a *Account) Principal() *Principal {
	name := ""
	if a.Name != nil {
		name = *a.Name
	}
	return &Principal{
		ID:          a.ID,
		Email:       a.Email,
		Name:        name,
		Role:        Role(a.Role),
		Permissions: ParsePermissions(a.Permissions),
	}
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
