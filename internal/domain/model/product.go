package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id_produto"`
	CategoriaID *int64          `gorm:"index" json:"id_categoria"`
	Nome        string          `gorm:"type:varchar(100);not null" json:"nome"`
	Descricao   string          `gorm:"type:text" json:"descricao"`
	Preco       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"preco"`
	//Quantidadeは在庫数。0未満にはならない
	Quantidade int64          `gorm:"not null;default:0" json:"quantidade"`
	ImagemURL  string         `gorm:"type:varchar(255)" json:"imagem_url"`
	Ativo      bool           `gorm:"not null;default:true;index" json:"ativo"`
	CreatedAt  time.Time      `gorm:"not null;autoCreateTime" json:"criado_em"`
	UpdatedAt  time.Time      `gorm:"not null;autoUpdateTime" json:"atualizado_em"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "produtos" }

// 要求数量に対して在庫が足りるか
func (p Product) TemEstoque(quantidade int64) bool {
	return quantidade > 0 && p.Quantidade >= quantidade
}
