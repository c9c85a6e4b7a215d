package models

import "time"

// Mensaje is a contact-form submission. Fecha and Leido are server-assigned;
// the rest comes from the public form.
type Mensaje struct {
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono,omitempty"`
	Asunto   string    `json:"asunto"`
	Mensaje  string    `json:"mensaje"`
	Fecha    time.Time `json:"fecha"`
	Leido    bool      `json:"leido"`
}
