package user

import (
	"context"
	"errors"

	"github.com/monevo-app/monevo-api/internal/auth"
	"github.com/monevo-app/monevo-api/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	GoogleLogin(ctx context.Context, code string) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
	UpdateProfile(ctx context.Context, id string, dto UpdateProfileDTO) (*UserResponse, error)
}

type service struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &service{repo: repo, oauthConfig: oauthConfig}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" || dto.Email == "" || len(dto.Password) < 6 {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return toResponse(&u), nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueTokens(u)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, err
	}
	return resp, nil
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrInvalidCredentials
	}

	svc, err := oauth2v2.NewService(ctx, option.WithTokenSource(s.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google userinfo")
		return nil, err
	}

	u, err := s.repo.GetByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			Name:  info.Name,
			Email: info.Email,
			Role:  "user",
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("User created via Google login")
	}

	if encrypted, err := config.Encrypt(token.AccessToken); err == nil {
		u.EncryptedGoogleAccessToken = encrypted
	}
	if token.RefreshToken != "" {
		if encrypted, err := config.Encrypt(token.RefreshToken); err == nil {
			u.EncryptedGoogleRefreshToken = encrypted
		}
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to persist Google tokens")
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokens(u)
}

func (s *service) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, dto UpdateProfileDTO) (*UserResponse, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if dto.Name != nil && *dto.Name != "" {
		u.Name = *dto.Name
	}
	if dto.Age != nil {
		u.Age = dto.Age
	}
	if dto.Profession != nil {
		u.Profession = dto.Profession
	}
	if dto.MaritalStatus != nil {
		u.MaritalStatus = dto.MaritalStatus
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return toResponse(u), nil
}

func (s *service) issueTokens(u *User) (*LoginResponse, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         *toResponse(u),
	}, nil
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Age:           u.Age,
		Profession:    u.Profession,
		MaritalStatus: u.MaritalStatus,
		CreatedAt:     u.CreatedAt,
	}
}
