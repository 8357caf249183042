package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/linskybing/gigboard/internal/api/middleware"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
	Store ObjectStore
}

func NewUserService(repos *repository.Repos, store ObjectStore) *UserService {
	return &UserService{
		Repos: repos,
		Store: store,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return user.User{}, apperr.Validation("username is required")
	}
	if !input.Role.Valid() {
		return user.User{}, apperr.Validation("role must be client or freelancer")
	}

	_, err := s.Repos.User.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, storeErr("user", err)
	}
	if err == nil {
		return user.User{}, apperr.Duplicate("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Username: username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, apperr.Duplicate("username already taken")
		}
		return user.User{}, storeErr("user", err)
	}
	return usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	ttl := time.Duration(config.TokenTTLHours) * time.Hour
	token, err := middleware.GenerateToken(usr.ID, usr.Username, string(usr.Role), ttl)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) GetProfile(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	return usr, storeErr("user", err)
}

// CompleteOnboarding fills in the profile. Fields that belong to the other
// role are ignored.
func (s *UserService) CompleteOnboarding(id uint, input user.OnboardingInput) (user.User, error) {
	bio := strings.TrimSpace(input.Bio)
	if bio == "" {
		return user.User{}, apperr.Validation("bio is required")
	}

	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, storeErr("user", err)
	}

	usr.Bio = bio
	switch usr.Role {
	case user.RoleClient:
		usr.CompanyName = trimmedOrNil(input.CompanyName)
	case user.RoleFreelancer:
		usr.PortfolioURL = trimmedOrNil(input.PortfolioURL)
		usr.Skills = cleanSkills(input.Skills)
	}
	usr.OnboardingComplete = true

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, storeErr("user", err)
	}
	return usr, nil
}

// SetAvatar uploads an image to object storage and points the profile at it.
func (s *UserService) SetAvatar(ctx context.Context, id uint, up Upload) (user.User, error) {
	if s.Store == nil {
		return user.User{}, apperr.Precondition("uploads are not available")
	}
	ext, err := validateImage(up)
	if err != nil {
		return user.User{}, err
	}

	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, storeErr("user", err)
	}

	url, err := s.Store.PutObject(ctx, objectKey("avatars", id, ext), up.Body, up.Size, up.ContentType)
	if err != nil {
		return user.User{}, apperr.Store("failed to store avatar", err)
	}

	usr.AvatarURL = &url
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, storeErr("user", err)
	}
	return usr, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
