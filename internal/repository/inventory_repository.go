package repository

import (
	"context"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫の現在値を設定
	SetEstoque(ctx context.Context, productID int64, novoEstoque int64) error

	// 在庫が足りるときだけ減算（UPDATE ... WHERE quantidade >= ?）
	DecreaseEstoqueIfEnough(ctx context.Context, productID int64, qtd int64) (bool, error)

	// 在庫戻し（キャンセルなど）
	IncreaseEstoque(ctx context.Context, productID int64, qtd int64) error

	// 調整履歴作成
	CreateAjuste(ctx context.Context, ajuste model.StockAdjustment) error
}
