package entity

// Roles válidos para User.
const (
	RoleAdmin      = "ADMIN"
	RolePharmacist = "PHARMACIST"
	RoleCashier    = "CASHIER"
)

// Módulos de la aplicación gateados por CanAccess.
const (
	ModuleDashboard = "dashboard"
	ModuleInventory = "inventory"
	ModuleSales     = "sales"
	ModuleReports   = "reports"
	ModuleUsers     = "users"
	ModuleHistory   = "history"
	ModuleConfig    = "config"
	ModuleHelp      = "help"
)

// AllModules lista completa de módulos; se asigna al primer ADMIN del bootstrap.
var AllModules = []string{
	ModuleInventory, ModuleSales, ModuleReports,
	ModuleUsers, ModuleHistory, ModuleConfig, ModuleHelp,
}

// User representa un usuario del sistema.
// PasswordHash es bcrypt; nunca se persiste ni compara en texto plano.
type User struct {
	ID             string
	Name           string
	LastName       string
	DocumentID     string
	Username       string
	PasswordHash   string
	Role           string // ADMIN, PHARMACIST, CASHIER
	Permissions    []string
	AllowedModules []string
	Active         bool
}

// FullName nombre completo para denormalizar en ventas y movimientos.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}
