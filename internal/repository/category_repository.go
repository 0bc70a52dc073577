package repository

import (
	"context"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
)

type CategoryRepository interface {
	//ativo=trueの一覧
	ListAtivas(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindByNome(ctx context.Context, nome string) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
}
