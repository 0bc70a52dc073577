package repository

import (
	"context"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d model.Delivery) (model.Delivery, error)
	FindByID(ctx context.Context, id int64) (model.Delivery, error)
	//注文IDから1件（1注文1配達）
	FindByPedidoID(ctx context.Context, pedidoID int64) (model.Delivery, error)
	//新しい順の一覧
	List(ctx context.Context) ([]model.Delivery, error)
	Update(ctx context.Context, d model.Delivery) error
}
