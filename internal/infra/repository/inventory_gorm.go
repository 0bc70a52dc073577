package repository

import (
	"context"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫の現在値を設定
func (r *InventoryGormRepository) SetEstoque(ctx context.Context, productID int64, novoEstoque int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantidade", novoEstoque)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫が足りるときだけ減らす。
// 条件付きUPDATEなので同時注文でも0未満にはならない。
func (r *InventoryGormRepository) DecreaseEstoqueIfEnough(ctx context.Context, productID int64, qtd int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND quantidade >= ?", productID, qtd).
		Update("quantidade", gorm.Expr("quantidade - ?", qtd))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *InventoryGormRepository) IncreaseEstoque(ctx context.Context, productID int64, qtd int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("quantidade", gorm.Expr("quantidade + ?", qtd))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 調整履歴作成
func (r *InventoryGormRepository) CreateAjuste(ctx context.Context, ajuste model.StockAdjustment) error {
	if err := r.db.WithContext(ctx).Create(&ajuste).Error; err != nil {
		return err
	}
	return nil
}
