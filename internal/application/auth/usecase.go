package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/internal/domain/repository"
	"github.com/grifosol/grifo-api/pkg/config"
	"github.com/grifosol/grifo-api/pkg/jwt"
)

// UseCase maneja registro y login de usuarios con emisión de JWT.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleSuperadmin, entity.RoleAdmin, entity.RoleSeller:
		return true
	}
	return false
}

// Register crea una cuenta nueva. El rol por defecto es seller.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if in.Username == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleSeller
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica credenciales y devuelve un token firmado con el rol del
// usuario. Credenciales incorrectas y usuario inexistente responden igual.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UserID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.FromUser(user),
	}, nil
}
