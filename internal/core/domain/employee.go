package domain

import "time"

// Employee (empleado) is an applicant that has been hired. The record keeps
// the same purchase fields as Applicant so existing lots stay attached.
type Employee struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Nombre          string    `json:"nombre" bson:"nombre"`
	Identificacion  string    `json:"identificacion" bson:"identificacion"`
	TipoCafe        string    `json:"tipo_cafe" bson:"tipo_cafe"`
	Peso            float64   `json:"peso" bson:"peso"`
	Precio          float64   `json:"precio" bson:"precio"`
	Telefono        string    `json:"telefono" bson:"telefono"`
	Estado          string    `json:"estado" bson:"estado"`
	EstadoMonetario string    `json:"estado_monetario" bson:"estado_monetario"`
	DepartmentID    string    `json:"department_id,omitempty" bson:"department_id,omitempty"`
	CreatedAt       time.Time `json:"date_create" bson:"date_create"`
}
