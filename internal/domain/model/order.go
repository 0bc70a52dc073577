package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusAguardandoPagamento OrderStatus = "Aguardando pagamento"
	OrderStatusPago                OrderStatus = "Pago"
	OrderStatusEmPreparo           OrderStatus = "Em preparo"
	OrderStatusPronto              OrderStatus = "Pronto"
	OrderStatusSaiuParaEntrega     OrderStatus = "Saiu para entrega"
	OrderStatusEntregue            OrderStatus = "Entregue"
	OrderStatusCancelado           OrderStatus = "Cancelado"
	OrderStatusReembolsado         OrderStatus = "Reembolsado"
)

// 注文ステータスの一覧（入力検証用）
var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusAguardandoPagamento: {},
	OrderStatusPago:                {},
	OrderStatusEmPreparo:           {},
	OrderStatusPronto:              {},
	OrderStatusSaiuParaEntrega:     {},
	OrderStatusEntregue:            {},
	OrderStatusCancelado:           {},
	OrderStatusReembolsado:         {},
}

func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderStatuses[s]
	return ok
}

// 前進方向の次ステータス
var orderNext = map[OrderStatus]OrderStatus{
	OrderStatusAguardandoPagamento: OrderStatusPago,
	OrderStatusPago:                OrderStatusEmPreparo,
	OrderStatusEmPreparo:           OrderStatusPronto,
	OrderStatusPronto:              OrderStatusSaiuParaEntrega,
	OrderStatusSaiuParaEntrega:     OrderStatusEntregue,
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusEntregue, OrderStatusCancelado, OrderStatusReembolsado:
		return true
	}
	return false
}

// 遷移可能か。終端からはどこへも行けない。
// Cancelado/Reembolsadoは終端以外のどこからでも可。
func (s OrderStatus) PodeTransicionarPara(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelado || next == OrderStatusReembolsado {
		return true
	}
	return orderNext[s] == next
}

type Order struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id_pedido"`
	Numero string `gorm:"column:numero_pedido;type:varchar(20);uniqueIndex;not null" json:"numero_pedido"`
	UserID int64  `gorm:"column:id_usuario;not null;index" json:"id_usuario"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Desconto    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"desconto"`
	TaxaEntrega decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"taxa_entrega"`
	ValorTotal  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"valor_total"`

	Status         OrderStatus `gorm:"type:varchar(30);not null;index" json:"status"`
	FormaPagamento string      `gorm:"type:varchar(30)" json:"forma_pagamento"`
	Observacoes    string      `gorm:"type:text" json:"observacoes"`

	//配達完了後の評価（1〜5）
	Avaliacao           *int16     `json:"avaliacao"`
	ComentarioAvaliacao string     `gorm:"type:text" json:"comentario_avaliacao"`
	DataAvaliacao       *time.Time `json:"data_avaliacao"`

	//OrderはItensを所有する。Orderの削除でItensも消える。
	Itens []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens"`

	CreatedAt time.Time `gorm:"column:data_pedido;not null;autoCreateTime;index" json:"data_pedido"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao;not null;autoUpdateTime" json:"data_atualizacao"`
}

func (Order) TableName() string { return "pedidos" }

// キャンセル可能な状態
func (o Order) PodeSerCancelado() bool {
	switch o.Status {
	case OrderStatusAguardandoPagamento, OrderStatusPago, OrderStatusEmPreparo:
		return true
	}
	return false
}

// 評価可能な状態（配達完了かつ未評価）
func (o Order) PodeSerAvaliado() bool {
	return o.Status == OrderStatusEntregue && o.Avaliacao == nil
}

func (o Order) EstaFinalizado() bool {
	return o.Status.Terminal()
}
