package schemas

// Appointment mirrors one record of GET /citas. Field names on the wire are
// the API's Spanish ones.
type Appointment struct {
	ID                  int        `json:"id" validate:"required"`
	PatientID           int        `json:"id_paciente" validate:"required"`
	PatientName         string     `json:"nombre_paciente" validate:"required"`
	PatientSocialName   string     `json:"nombre_social_paciente"`
	StatusID            int        `json:"id_estado" validate:"required"`
	StatusName          string     `json:"estado_cita" validate:"required"`
	CancellationState   int        `json:"estado_anulacion"`
	ConfirmationState   int        `json:"estado_confirmacion"`
	TreatmentID         int        `json:"id_tratamiento"`
	TreatmentName       string     `json:"nombre_tratamiento"`
	TreatmentUnassigned int        `json:"tratamiento_sin_asignar"`
	Date                Date       `json:"fecha" validate:"required"`
	StartTime           string     `json:"hora_inicio" validate:"required"`
	EndTime             string     `json:"hora_fin" validate:"required"`
	Duration            int        `json:"duracion" validate:"required"`
	DentistID           int        `json:"id_dentista" validate:"required"`
	DentistName         string     `json:"nombre_dentista"`
	BranchID            int        `json:"id_sucursal" validate:"required"`
	BranchName          string     `json:"nombre_sucursal"`
	AttentionReason     *string    `json:"motivo_atencion"`
	ChairID             int        `json:"id_sillon"`
	ChairName           string     `json:"nombre_sillon"`
	AttentionPlaceID    *int       `json:"id_lugar_atencion"`
	AttentionPlaceName  *string    `json:"nombre_lugar_atencion"`
	Comments            string     `json:"comentarios"`
	UpdatedAt           DateTime   `json:"fecha_actualizacion" validate:"required"`
	Links               []DataLink `json:"links"`
}

// AppointmentStatus mirrors one record of GET /citas/estados.
type AppointmentStatus struct {
	ID           int        `json:"id" validate:"required"`
	Name         string     `json:"nombre" validate:"required"`
	Color        string     `json:"color"`
	Reserved     bool       `json:"reservado"`
	Cancellation bool       `json:"anulacion"`
	InternalUse  bool       `json:"uso_interno"`
	Enabled      bool       `json:"habilitado"`
	Links        []DataLink `json:"links"`
}
