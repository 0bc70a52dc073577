package model

import "time"

type Role string

const (
	RoleCliente    Role = "cliente"
	RoleAdmin      Role = "admin"
	RoleEntregador Role = "entregador"
)

type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id_usuario"`
	Nome         string     `gorm:"type:varchar(100);not null" json:"nome"`
	Sobrenome    string     `gorm:"type:varchar(100)" json:"sobrenome"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Telefone     string     `gorm:"type:varchar(15);not null" json:"telefone"`
	SenhaHash    string     `gorm:"column:senha_hash;not null" json:"-"`
	Tipo         Role       `gorm:"column:tipo_usuario;type:varchar(20);not null;default:'cliente';index" json:"tipo_usuario"`
	Ativo        bool       `gorm:"not null;default:true;index" json:"ativo"`
	UltimoAcesso *time.Time `json:"ultimo_acesso"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"criado_em"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"atualizado_em"`
}

func (User) TableName() string { return "usuarios" }
