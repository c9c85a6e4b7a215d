package dto

// CreateMensajeRequest is the public contact-form payload. Fecha and Leido
// are stamped server-side.
type CreateMensajeRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono"`
	Asunto   string `json:"asunto" validate:"required"`
	Mensaje  string `json:"mensaje" validate:"required"`
}

// MarkMensajeReadRequest marks one message read by its array index, matching
// the historical wire contract of the dashboard.
type MarkMensajeReadRequest struct {
	Index *int `json:"index" validate:"required"`
}
