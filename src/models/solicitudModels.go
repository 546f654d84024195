package models

import "time"

// Estados permitidos para una solicitud
const (
	EstadoPendiente  = "pendiente"
	EstadoEnProceso  = "en_proceso"
	EstadoCompletada = "completada"
)

// EstadosPermitidos returns the list of valid values for SolicitudModel.Estado
func EstadosPermitidos() []string {
	return []string{EstadoPendiente, EstadoEnProceso, EstadoCompletada}
}

type SolicitudModel struct {
	Id              int               `json:"id" gorm:"primaryKey;autoIncrement"`
	CandidatoId     int               `json:"candidato_id" gorm:"column:candidato_id;not null"`
	Candidato       *CandidatoModel   `json:"candidato,omitempty" gorm:"foreignKey:CandidatoId;references:Id;constraint:OnDelete:CASCADE"`
	TipoEstudioId   int               `json:"tipo_estudio_id" gorm:"column:tipo_estudio_id;not null"`
	TipoEstudio     *TipoEstudioModel `json:"tipo_estudio,omitempty" gorm:"foreignKey:TipoEstudioId;references:Id;constraint:OnDelete:CASCADE"`
	Estado          string            `json:"estado" gorm:"type:varchar(20);default:pendiente;not null;check:chk_estado,estado IN ('pendiente','en_proceso','completada')"`
	FechaSolicitud  time.Time         `json:"fecha_solicitud" gorm:"type:date;not null"`
	FechaCompletado *time.Time        `json:"fecha_completado" gorm:"type:date"`
	CreatedAt       time.Time         `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time         `json:"updated_at" gorm:"column:updated_at"`
}

func (SolicitudModel) TableName() string {
	return "solicitudes"
}
