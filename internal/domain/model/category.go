package model

import "time"

type Category struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id_categoria"`
	Nome      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"nome"`
	Descricao string    `gorm:"type:text" json:"descricao"`
	Ativo     bool      `gorm:"not null;default:true;index" json:"ativo"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"atualizado_em"`
}

func (Category) TableName() string { return "categorias" }
