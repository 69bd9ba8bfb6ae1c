package domain

import "time"

// Applicant (aspirante) is a coffee seller applying to supply the company.
// Field names follow the Spanish wire contract consumed by the frontend.
type Applicant struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Nombre          string    `json:"nombre" bson:"nombre"`
	Identificacion  string    `json:"identificacion" bson:"identificacion"`
	TipoCafe        string    `json:"tipo_cafe" bson:"tipo_cafe"`
	Peso            float64   `json:"peso" bson:"peso"`
	Precio          float64   `json:"precio" bson:"precio"`
	PrecioTotal     float64   `json:"precio_total" bson:"precio_total"`
	Telefono        string    `json:"telefono" bson:"telefono"`
	Estado          string    `json:"estado" bson:"estado"`
	EstadoMonetario string    `json:"estado_monetario" bson:"estado_monetario"`
	CreatedAt       time.Time `json:"date_create" bson:"date_create"`
}

// TotalPrice is the purchase total for the offered lot.
func (a Applicant) TotalPrice() float64 {
	return a.Peso * a.Precio
}
