package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Order("data_pedido desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("id_usuario = ?", userID).
		Order("data_pedido desc").Order("id desc").
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Omit("Itens").Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) SetFormaPagamento(ctx context.Context, orderID int64, forma string) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("forma_pagamento", forma)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) SetAvaliacao(ctx context.Context, orderID int64, nota int16, comentario string, quando time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"avaliacao":            nota,
			"comentario_avaliacao": comentario,
			"data_avaliacao":       quando,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文番号はLCC-YYYY-NNNNNN。年ごとに連番を振り直す。
// 採番は注文作成と同じTxの中で呼ぶこと。
func (r *OrderGormRepository) ProximoNumero(ctx context.Context, agora time.Time) (string, error) {
	ano := agora.Year()
	prefixo := fmt.Sprintf("LCC-%d-", ano)

	var ultimo model.Order
	err := r.db.WithContext(ctx).
		Where("numero_pedido LIKE ?", prefixo+"%").
		Order("id desc").
		First(&ultimo).Error

	proximo := 1
	if err == nil {
		partes := strings.Split(ultimo.Numero, "-")
		if len(partes) == 3 {
			if n, perr := strconv.Atoi(partes[2]); perr == nil {
				proximo = n + 1
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return fmt.Sprintf("%s%06d", prefixo, proximo), nil
}
