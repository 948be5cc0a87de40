package dto

// RegisterAdminRequest entrada para el bootstrap del primer usuario.
// Solo válido cuando no existe ningún usuario; el rol se fuerza a ADMIN.
type RegisterAdminRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	LastName   string `json:"last_name"`
	DocumentID string `json:"document_id"`
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	LastName       string   `json:"last_name"`
	DocumentID     string   `json:"document_id"`
	Username       string   `json:"username" validate:"required,min=3,max=50"`
	Password       string   `json:"password" validate:"required,min=8"`
	Role           string   `json:"role" validate:"required,oneof=ADMIN PHARMACIST CASHIER"`
	AllowedModules []string `json:"allowed_modules"`
	Active         bool     `json:"active"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password opcional (se rehashea si viene).
type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	LastName       *string  `json:"last_name"`
	DocumentID     *string  `json:"document_id"`
	Password       *string  `json:"password"`
	Role           *string  `json:"role"`
	AllowedModules []string `json:"allowed_modules"`
	Active         *bool    `json:"active"`
}

// UserResponse salida de un usuario (nunca expone el hash).
type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	LastName       string   `json:"last_name"`
	DocumentID     string   `json:"document_id"`
	Username       string   `json:"username"`
	Role           string   `json:"role"`
	Permissions    []string `json:"permissions"`
	AllowedModules []string `json:"allowed_modules"`
	Active         bool     `json:"active"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
