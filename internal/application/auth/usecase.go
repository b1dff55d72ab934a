package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Reservas-api/internal/application/dto"
	"github.com/jhoicas/Reservas-api/internal/domain"
	"github.com/jhoicas/Reservas-api/internal/domain/entity"
	"github.com/jhoicas/Reservas-api/internal/domain/repository"
	"github.com/jhoicas/Reservas-api/pkg/config"
	"github.com/jhoicas/Reservas-api/pkg/jwt"
	"github.com/jhoicas/Reservas-api/pkg/logger"
)

// UseCase maneja registro y login del personal interno.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Register da de alta un usuario interno con contraseña hasheada (bcrypt).
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if role != entity.RoleAdmin && role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		StoreID:      req.StoreID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario registrado")
	return toUserResponse(user), nil
}

// Login valida credenciales y devuelve un token JWT con user_id y role.
// Cualquier fallo de credenciales devuelve domain.ErrUnauthorized sin
// distinguir email inexistente de contraseña incorrecta.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login correcto")
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		StoreID: u.StoreID,
	}
}
