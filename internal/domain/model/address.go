package model

import "time"

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id_endereco"`
	UserID int64 `gorm:"column:id_usuario;not null;index" json:"id_usuario"`

	//郵便番号（12345-678形式）
	CEP string `gorm:"type:varchar(9);not null;index" json:"cep"`

	Cidade string `gorm:"type:varchar(100);not null" json:"cidade"`

	//州の略称（SP, RJなど）
	Estado string `gorm:"type:varchar(2);not null" json:"estado"`

	Rua    string `gorm:"type:varchar(150);not null" json:"rua"`
	Numero string `gorm:"type:varchar(10);not null" json:"numero"`

	Complemento string `gorm:"type:varchar(100)" json:"complemento"`
	Referencia  string `gorm:"type:varchar(150)" json:"referencia"`

	//このユーザーのデフォルト住所か
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `gorm:"column:criado_em;not null;autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;not null;autoUpdateTime" json:"atualizado_em"`
}

func (Address) TableName() string { return "enderecos" }
