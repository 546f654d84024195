package models

import "time"

type CandidatoModel struct {
	Id                 int              `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre             string           `json:"nombre" gorm:"type:varchar(100);not null"`
	Apellido           string           `json:"apellido" gorm:"type:varchar(100);not null"`
	DocumentoIdentidad string           `json:"documento_identidad" gorm:"column:documento_identidad;type:varchar(255);uniqueIndex;not null"`
	Correo             string           `json:"correo" gorm:"type:varchar(255);uniqueIndex;not null"`
	Telefono           string           `json:"telefono" gorm:"type:varchar(10);not null"`
	Solicitudes        []SolicitudModel `json:"solicitudes,omitempty" gorm:"foreignKey:CandidatoId"`
	CreatedAt          time.Time        `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time        `json:"updated_at" gorm:"column:updated_at"`
}

func (CandidatoModel) TableName() string {
	return "candidatos"
}
