package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nexpay/nexpay-backend/internal/auth"
	"github.com/nexpay/nexpay-backend/internal/metrics"
	"github.com/nexpay/nexpay-backend/internal/models"
	repo "github.com/nexpay/nexpay-backend/internal/repository"
)

type UserService struct {
	dir repo.Directory
	tm  *auth.TokenManager
}

func NewUserService(dir repo.Directory, tm *auth.TokenManager) *UserService {
	return &UserService{dir: dir, tm: tm}
}

// Session is what a successful signup, login or refresh hands back to the
// caller: the public view of the account plus a token pair.
type Session struct {
	User         models.PublicUser `json:"user"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

func (s *UserService) Signup(name, email, password string, role models.Role) (Session, error) {
	u := models.User{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Role: role}
	if err := u.Validate(); err != nil {
		return Session{}, err
	}
	if len(password) < 6 {
		return Session{}, errors.New("password too short")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, err
	}
	created, err := s.dir.Create(u.Name, u.Email, hash, role)
	if err != nil {
		return Session{}, err
	}
	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	return s.session(created)
}

func (s *UserService) Login(email, password string) (Session, error) {
	u, ok := s.dir.GetByEmail(email)
	if !ok || auth.VerifyPassword(password, u.PasswordHash) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.session(u)
}

// Refresh exchanges a valid refresh token for a new pair. The account is
// re-resolved so the session carries a fresh balance.
func (s *UserService) Refresh(refreshToken string) (Session, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	u, ok := s.dir.GetByID(claims.UserID)
	if !ok {
		return Session{}, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *UserService) session(u models.User) (Session, error) {
	access, refresh, exp, err := s.tm.GeneratePair(u.ID, string(u.Role))
	if err != nil {
		return Session{}, err
	}
	return Session{User: u.Public(), AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

func (s *UserService) Get(id string) (models.User, bool) { return s.dir.GetByID(id) }

func (s *UserService) ListByRole(role models.Role) []models.User { return s.dir.ListByRole(role) }

func (s *UserService) List() []models.User { return s.dir.List() }
