package schemas

// Branch mirrors one record of GET /sucursales.
type Branch struct {
	ID      int        `json:"id" validate:"required"`
	Name    string     `json:"nombre" validate:"required"`
	Phone   string     `json:"telefono"`
	City    string     `json:"ciudad"`
	Commune string     `json:"comuna"`
	Address string     `json:"direccion"`
	Enabled bool       `json:"habilitada"`
	Links   []DataLink `json:"links"`
}
