package model

import "github.com/shopspring/decimal"

// 購入時点の商品スナップショットを必ず保存する。
// 後から商品の価格が変わっても過去の注文は変わらない。
type OrderItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id_item"`
	OrderID     int64           `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	ProductID   int64           `gorm:"column:id_produto;not null;index" json:"id_produto"`
	NomeProduto string          `gorm:"type:varchar(100);not null" json:"nome_produto"`
	Quantidade  int64           `gorm:"not null" json:"quantidade"`
	Preco       decimal.Decimal `gorm:"column:preco_unitario;type:numeric(10,2);not null" json:"preco_unitario"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Observacoes string          `gorm:"type:varchar(255)" json:"observacoes"`
}

func (OrderItem) TableName() string { return "itens_pedido" }
