package dto

// PharmacyConfigRequest body para PUT /api/config (solo ADMIN).
type PharmacyConfigRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	NIT     string `json:"nit"`
	Socials string `json:"socials"`
}

// PharmacyConfigResponse salida del singleton de configuración.
type PharmacyConfigResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	NIT     string `json:"nit"`
	Socials string `json:"socials"`
}
