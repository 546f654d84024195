package dtos

// CandidatoUpdateDTO carries the fields supplied in a partial update; nil
// pointers mean the field was not sent and must be left unchanged.
type CandidatoUpdateDTO struct {
	Nombre             *string `json:"nombre"`
	Apellido           *string `json:"apellido"`
	DocumentoIdentidad *string `json:"documento_identidad"`
	Correo             *string `json:"correo"`
	Telefono           *string `json:"telefono"`
}
