package repository

import (
	"context"
	"errors"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"gorm.io/gorm"
)

type DeliveryGormRepository struct {
	db *gorm.DB
}

func NewDeliveryGormRepository(db *gorm.DB) *DeliveryGormRepository {
	return &DeliveryGormRepository{db: db}
}

func (r *DeliveryGormRepository) Create(ctx context.Context, d model.Delivery) (model.Delivery, error) {
	if err := r.db.WithContext(ctx).Create(&d).Error; err != nil {
		return model.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryGormRepository) FindByID(ctx context.Context, id int64) (model.Delivery, error) {
	var d model.Delivery
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Delivery{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryGormRepository) FindByPedidoID(ctx context.Context, pedidoID int64) (model.Delivery, error) {
	var d model.Delivery
	err := r.db.WithContext(ctx).Where("id_pedido = ?", pedidoID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Delivery{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Delivery{}, err
	}
	return d, nil
}

func (r *DeliveryGormRepository) List(ctx context.Context) ([]model.Delivery, error) {
	var list []model.Delivery
	err := r.db.WithContext(ctx).
		Order("criado_em desc").Order("id desc").
		Find(&list).Error
	if err != nil {
		return []model.Delivery{}, err
	}
	return list, nil
}

// 更新は許可された列だけ
func (r *DeliveryGormRepository) Update(ctx context.Context, d model.Delivery) error {
	res := r.db.WithContext(ctx).Model(&model.Delivery{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
		"status":          d.Status,
		"id_entregador":   d.EntregadorID,
		"data_atribuicao": d.DataAtribuicao,
		"data_saida":      d.DataSaida,
		"data_entrega":    d.DataEntrega,
		"observacoes":     d.Observacoes,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
