package repository

import (
	"context"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//全注文を新しい順で返す
	List(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//支払い確定（forma_pagamentoの記録）
	SetFormaPagamento(ctx context.Context, orderID int64, forma string) error
	//配達完了後の評価を記録
	SetAvaliacao(ctx context.Context, orderID int64, nota int16, comentario string, quando time.Time) error

	//LCC-YYYY-NNNNNN形式の次の注文番号（同一Tx内で採番する）
	ProximoNumero(ctx context.Context, agora time.Time) (string, error)
}
