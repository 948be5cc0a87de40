package repository

import "github.com/farmabol/farmacia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// CreateIfNone inserta solo si la tabla está vacía, en una única sentencia:
// dos bootstraps concurrentes no pueden crear dos ADMIN iniciales. Devuelve
// ErrConflict cuando ya existe algún usuario.
type UserRepository interface {
	Create(user *entity.User) error
	CreateIfNone(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Count() (int, error)
	CountActiveAdmins() (int, error)
	Delete(id string) error
}
