package handler

// applicantRequest is shared by create and update; every field is required,
// matching the all-fields-mandatory contract of the registry frontend.
// precio_total is never accepted from the client.
type applicantRequest struct {
	Nombre          string  `json:"nombre" validate:"required"`
	Identificacion  string  `json:"identificacion" validate:"required"`
	TipoCafe        string  `json:"tipo_cafe" validate:"required"`
	Peso            float64 `json:"peso" validate:"required,gt=0"`
	Precio          float64 `json:"precio" validate:"required,gt=0"`
	Telefono        string  `json:"telefono" validate:"required"`
	Estado          string  `json:"estado" validate:"required"`
	EstadoMonetario string  `json:"estado_monetario" validate:"required"`
}

// employeeRequest mirrors applicantRequest for the employee collection.
type employeeRequest struct {
	Nombre          string  `json:"nombre" validate:"required"`
	Identificacion  string  `json:"identificacion" validate:"required"`
	TipoCafe        string  `json:"tipo_cafe" validate:"required"`
	Peso            float64 `json:"peso" validate:"required,gt=0"`
	Precio          float64 `json:"precio" validate:"required,gt=0"`
	Telefono        string  `json:"telefono" validate:"required"`
	Estado          string  `json:"estado" validate:"required"`
	EstadoMonetario string  `json:"estado_monetario" validate:"required"`
}

type departmentRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type assignRequest struct {
	DepartmentID string `json:"department_id" validate:"required"`
	EmployeeID   string `json:"employee_id" validate:"required"`
}
