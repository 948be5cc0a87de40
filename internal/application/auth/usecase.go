package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	"github.com/farmabol/farmacia-api/internal/domain/repository"
	"github.com/farmabol/farmacia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: bootstrap del primer ADMIN y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// dummyHash se compara cuando el username no existe, para que el login falle
// en tiempo comparable al de una contraseña incorrecta (no enumerar usuarios).
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("farmacia-dummy-password"), bcrypt.DefaultCost)

// RegisterAdmin crea el primer usuario del sistema, forzado a ADMIN con todos
// los módulos. Solo es válido cuando no existe ningún usuario: después del
// bootstrap el registro queda cerrado y devuelve ErrConflict.
func (uc *AuthUseCase) RegisterAdmin(in dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	// Chequeo barato antes de pagar el bcrypt; la garantía real la da
	// CreateIfNone, que es atómico frente a bootstraps concurrentes.
	count, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		Name:           in.Name,
		LastName:       in.LastName,
		DocumentID:     in.DocumentID,
		Username:       in.Username,
		PasswordHash:   string(hash),
		Role:           entity.RoleAdmin,
		Permissions:    []string{"ALL"},
		AllowedModules: append([]string(nil), entity.AllModules...),
		Active:         true,
	}
	if err := uc.userRepo.CreateIfNone(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password contra el hash bcrypt y genera un JWT.
// Cualquier causa de fallo (usuario inexistente, inactivo o contraseña
// incorrecta) devuelve el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse convierte la entidad a DTO sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		LastName:       u.LastName,
		DocumentID:     u.DocumentID,
		Username:       u.Username,
		Role:           u.Role,
		Permissions:    u.Permissions,
		AllowedModules: u.AllowedModules,
		Active:         u.Active,
	}
}
