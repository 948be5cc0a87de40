package entity

// PharmacyConfig es el registro singleton con los datos de la farmacia.
// Lo leen los recibos y reportes; solo un ADMIN lo modifica.
type PharmacyConfig struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string
	NIT     string
	Socials string
}
