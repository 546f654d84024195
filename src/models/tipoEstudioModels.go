package models

import "time"

type TipoEstudioModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre      string    `json:"nombre" gorm:"type:varchar(100);not null"`
	Descripcion string    `json:"descripcion" gorm:"type:varchar(500);not null"`
	Precio      float64   `json:"precio" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (TipoEstudioModel) TableName() string {
	return "tipos_estudio"
}
