package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grifosol/grifo-api/internal/application/dto"
	"github.com/grifosol/grifo-api/internal/domain"
	"github.com/grifosol/grifo-api/internal/domain/entity"
	"github.com/grifosol/grifo-api/pkg/config"
	pkgjwt "github.com/grifosol/grifo-api/pkg/jwt"
)

type memUserRepo struct {
	users  []*entity.User
	nextID int64
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.nextID++
	user.UserID = r.nextID
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

var testJWT = config.JWTConfig{Secret: "secret-de-test", Expiration: 60, Issuer: "grifo-api-test"}

func TestRegisterDefaultsToSeller(t *testing.T) {
	repo := &memUserRepo{}
	uc := NewUseCase(repo, testJWT)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "jperez",
		Password: "secreto1",
		FullName: "Juan Pérez",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secreto1", user.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto1")))
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	uc := NewUseCase(&memUserRepo{}, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "", Password: "secreto1"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "corta"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "secreto1", Role: "gerente"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := &memUserRepo{}
	uc := NewUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "secreto1"})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "otra-clave"})
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	repo := &memUserRepo{}
	uc := NewUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "admin1",
		Password: "secreto1",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "secreto1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.UserID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLoginWrongCredentials(t *testing.T) {
	repo := &memUserRepo{}
	uc := NewUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "equivocada"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// Usuario inexistente responde igual que contraseña incorrecta.
	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := &memUserRepo{}
	uc := NewUseCase(repo, testJWT)

	user, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "jperez", Password: "secreto1"})
	require.NoError(t, err)
	stored, _ := repo.GetByID(user.UserID)
	stored.IsActive = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "secreto1"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
