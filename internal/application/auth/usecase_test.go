package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Reservas-api/internal/application/auth"
	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	pkgconfig "github.com/jhoicas/Reservas-api/pkg/config"
	pkgjwt "github.com/jhoicas/Reservas-api/pkg/jwt"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

const testSecret = "secret-para-tests-de-auth"

func newTestAuth() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewUseCase(repo, pkgconfig.JWTConfig{
		Secret:     testSecret,
		Expiration: 60,
		Issuer:     "reservas-retail-test",
	}, log)
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_GuardaHashYNormalizaEmail(t *testing.T) {
	uc, repo := newTestAuth()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "  Ana@Example.COM ", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, entity.RoleStaff, out.Role, "rol por defecto: staff")

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecreta", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecreta")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ANA@example.com", Password: "otraclave123", Name: "Ana 2",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta_Invalida(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "corta", Name: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolDesconocido_Invalido(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", Name: "Ana", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenValidoConRol(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "admin@example.com", Password: "supersecreta", Name: "Admin", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "supersecreta",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta_Unauthorized(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "equivocada123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_Unauthorized(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@example.com", Password: "loquesea123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y contraseña incorrecta deben ser indistinguibles")
}

func TestLogin_UsuarioInactivo_Unauthorized(t *testing.T) {
	uc, repo := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)
	repo.byEmail["ana@example.com"].Status = "inactive"

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "supersecreta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailConMayusculas_Normaliza(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", Name: "Ana",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: strings.ToUpper("ana@example.com"), Password: "supersecreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
}
