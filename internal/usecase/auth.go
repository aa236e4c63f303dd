package usecase

import (
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// AdminAccount is the single administrative identity. It is built from
// configuration at startup; there is no user store behind it.
type AdminAccount struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type AuthUseCase interface {
	Login(username, password string) (string, *AdminAccount, error)
	Verify(tokenString string) (*AdminAccount, error)
}

type authUseCaseImpl struct {
	admin        AdminAccount
	passwordHash []byte
	jwtService   *jwt.Service
}

func NewAuthUseCase(cfg config.AdminConfig, jwtService *jwt.Service) (AuthUseCase, error) {
	// The configured password is kept only as a bcrypt hash so the plaintext
	// never lingers in process memory past startup.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash admin password")
	}

	return &authUseCaseImpl{
		admin:        AdminAccount{ID: 1, Username: cfg.Username},
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

func (a *authUseCaseImpl) Login(username, password string) (string, *AdminAccount, error) {
	if username != a.admin.Username {
		return "", nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.ID, a.admin.Username)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	admin := a.admin
	return token, &admin, nil
}

func (a *authUseCaseImpl) Verify(tokenString string) (*AdminAccount, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenValidation)
	}

	return &AdminAccount{ID: claims.AdminID, Username: claims.Username}, nil
}
