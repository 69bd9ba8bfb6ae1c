package domain

import "time"

// Department groups employees for work assignment.
type Department struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Nombre      string    `json:"nombre" bson:"nombre"`
	Descripcion string    `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Empleados   []string  `json:"empleados" bson:"empleados"`
	CreatedAt   time.Time `json:"date_create" bson:"date_create"`
}
