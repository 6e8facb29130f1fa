package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	users      ports.UserRepo
	tokens     ports.TokenManager
	logger     logger.Logger
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users ports.UserRepo, tokens ports.TokenManager, logger logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register creates an attendee or exhibitor account and logs it in.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if in.Role == "" {
		in.Role = domain.RoleAttendee
	}

	v := domain.NewValidationError()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		v.Add("name", "name is required")
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		v.Add("email", err.Error())
	}
	if len(in.Password) < minPasswordLength {
		v.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if in.Role != domain.RoleAttendee && in.Role != domain.RoleExhibitor {
		v.Add("role", "role must be attendee or exhibitor")
	}
	var company *string
	if in.CompanyName != nil && strings.TrimSpace(*in.CompanyName) != "" {
		c := strings.TrimSpace(*in.CompanyName)
		company = &c
	}
	if in.Role == domain.RoleExhibitor && company == nil {
		v.Add("company_name", "company name is required for exhibitors")
	}
	if err = v.Err(); err != nil {
		return nil, err
	}

	user, err := s.newUser(name, email, in.Password, in.Role)
	if err != nil {
		return nil, err
	}
	user.CompanyName = company
	user.TelegramChatID = in.TelegramChatID

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return s.issue(user)
}

// Login сверяет учетные данные с сохраненной коллекцией users.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return s.issue(user)
}

func (s *AuthService) Logout(_ context.Context, sess *domain.Session) error {
	if !sess.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}

	s.tokens.Revoke(sess.TokenID, sess.ExpiresAt)
	s.logger.Info("user logged out", logger.String("user_id", sess.User.ID))

	return nil
}

// Resolve validates a bearer token and re-reads its user from storage.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
		}
		return nil, fmt.Errorf("get session user: %w", err)
	}

	sess := &domain.Session{User: user, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		s.logger.Warn("admin credentials are not configured, skipping admin bootstrap")
		return nil
	}

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			s.logger.Warn("admin email belongs to a non-admin account",
				logger.String("user_id", existing.ID),
			)
		}
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("get admin: %w", err)
	}

	email, err = normalizeEmail(email)
	if err != nil {
		return fmt.Errorf("admin email: %w", err)
	}

	user, err := s.newUser(name, email, password, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if err = s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin account created", logger.String("user_id", user.ID))
	return nil
}

func (s *AuthService) newUser(name, email, password string, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Events:       []string{},
		CreatedAt:    s.now().UTC(),
	}, nil
}

func (s *AuthService) issue(user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errors.New("email is invalid")
	}
	return strings.ToLower(email), nil
}
