package model

import "time"

//管理者による在庫調整の履歴

type StockAdjustment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id_ajuste"`
	ProductID   int64     `gorm:"column:id_produto;not null;index" json:"id_produto"`
	AdminUserID int64     `gorm:"column:id_admin;not null;index" json:"id_admin"`
	Delta       int64     `gorm:"not null" json:"delta"`
	Motivo      string    `gorm:"type:varchar(255);not null" json:"motivo"`
	CreatedAt   time.Time `gorm:"column:criado_em;not null;autoCreateTime" json:"criado_em"`
}

func (StockAdjustment) TableName() string { return "ajustes_estoque" }
