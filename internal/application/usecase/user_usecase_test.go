package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmabol/farmacia-api/internal/application/dto"
	"github.com/farmabol/farmacia-api/internal/application/usecase"
	"github.com/farmabol/farmacia-api/internal/domain"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
)

// fakeUserRepo implementación en memoria de repository.UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) CreateIfNone(u *entity.User) error {
	if len(r.users) > 0 {
		return domain.ErrConflict
	}
	return r.Create(u)
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func (r *fakeUserRepo) CountActiveAdmins() (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == entity.RoleAdmin && u.Active {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func seed(repo *fakeUserRepo, id, username, role string, active bool) {
	repo.users[id] = &entity.User{
		ID:       id,
		Name:     username,
		Username: username,
		Role:     role,
		Active:   active,
	}
}

func TestCreateUser_AdminRecibeTodosLosModulos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Name:           "Ana",
		Username:       "ana",
		Password:       "clave1234",
		Role:           entity.RoleAdmin,
		AllowedModules: []string{entity.ModuleSales}, // se ignora para ADMIN
		Active:         true,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.AllModules, out.AllowedModules)
}

func TestCreateUser_RespetaModulosDelNoAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(dto.CreateUserRequest{
		Name:           "Luis",
		Username:       "luis",
		Password:       "clave1234",
		Role:           entity.RoleCashier,
		AllowedModules: []string{entity.ModuleSales},
		Active:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.ModuleSales}, out.AllowedModules)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "luis", entity.RoleCashier, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Name: "Otro Luis", Username: "luis", Password: "clave1234", Role: entity.RoleCashier,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.Create(dto.CreateUserRequest{
		Name: "X", Username: "x", Password: "clave1234", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteUser_NoPermiteAutoEliminarse(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "admin", entity.RoleAdmin, true)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("u-1", "u-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.users, "u-1")
}

func TestDeleteUser_ProtegeAlUltimoAdminActivo(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "admin", entity.RoleAdmin, true)
	seed(repo, "u-2", "cajero", entity.RoleCashier, true)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete("u-1", "u-2")
	assert.ErrorIs(t, err, domain.ErrLastAdmin, "el sistema nunca queda sin administración")
	assert.Contains(t, repo.users, "u-1")
}

func TestDeleteUser_AdminConReemplazoSePuedeEliminar(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "admin1", entity.RoleAdmin, true)
	seed(repo, "u-2", "admin2", entity.RoleAdmin, true)
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete("u-1", "u-2"))
	assert.NotContains(t, repo.users, "u-1")
}

func TestDeleteUser_AdminInactivoNoBloquea(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "admin-activo", entity.RoleAdmin, true)
	seed(repo, "u-2", "admin-inactivo", entity.RoleAdmin, false)
	seed(repo, "u-3", "cajero", entity.RoleCashier, true)
	uc := usecase.NewUserUseCase(repo)

	// El inactivo se elimina sin contar contra la protección.
	require.NoError(t, uc.Delete("u-2", "u-3"))
	// Pero el único activo sigue protegido.
	assert.ErrorIs(t, uc.Delete("u-1", "u-3"), domain.ErrLastAdmin)
}

func TestDeleteUser_Inexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	assert.ErrorIs(t, uc.Delete("fantasma", "u-otro"), domain.ErrNotFound)
}

func TestUpdateUser_RehashSoloSiVienePassword(t *testing.T) {
	repo := newFakeUserRepo()
	seed(repo, "u-1", "luis", entity.RoleCashier, true)
	repo.users["u-1"].PasswordHash = "hash-original"
	uc := usecase.NewUserUseCase(repo)

	name := "Luis Alberto"
	_, err := uc.Update("u-1", dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "hash-original", repo.users["u-1"].PasswordHash,
		"sin password en el request el hash no cambia")

	pass := "nueva-clave-123"
	_, err = uc.Update("u-1", dto.UpdateUserRequest{Password: &pass})
	require.NoError(t, err)
	assert.NotEqual(t, "hash-original", repo.users["u-1"].PasswordHash)
	assert.NotEqual(t, pass, repo.users["u-1"].PasswordHash, "nunca se guarda en claro")
}
