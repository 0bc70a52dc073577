package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"
)

type CategoryUsecase struct {
	cr repo.CategoryRepository
}

func NewCategoryUsecase(cr repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{cr: cr}
}

type CategoryInput struct {
	Nome      string
	Descricao string
	Ativo     *bool
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := u.cr.ListAtivas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []model.Category{}
	}
	return cats, nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewValidationError("id inválido")
	}

	c, err := u.cr.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Categoria não encontrada")
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("find category: %w", err)
	}
	return c, nil
}

// 名前はユニーク。重複はValidationErrorで返す。
func (u *CategoryUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return model.Category{}, NewValidationError("Nome é obrigatório")
	}

	if _, err := u.cr.FindByNome(ctx, nome); err == nil {
		return model.Category{}, NewValidationError("Categoria '%s' já existe", nome)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, fmt.Errorf("find category: %w", err)
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	created, err := u.cr.Create(ctx, model.Category{
		Nome:      nome,
		Descricao: strings.TrimSpace(in.Descricao),
		Ativo:     ativo,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewValidationError("id inválido")
	}
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return model.Category{}, NewValidationError("Nome é obrigatório")
	}

	c, err := u.cr.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Categoria não encontrada")
	}
	if err != nil {
		return model.Category{}, fmt.Errorf("find category: %w", err)
	}

	//名前変更時だけ重複チェック
	if nome != c.Nome {
		if outra, err := u.cr.FindByNome(ctx, nome); err == nil && outra.ID != id {
			return model.Category{}, NewValidationError("Categoria '%s' já existe", nome)
		} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return model.Category{}, fmt.Errorf("find category: %w", err)
		}
	}

	c.Nome = nome
	c.Descricao = strings.TrimSpace(in.Descricao)
	if in.Ativo != nil {
		c.Ativo = *in.Ativo
	}

	if err := u.cr.Update(ctx, c); err != nil {
		return model.Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (u *CategoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidationError("id inválido")
	}

	err := u.cr.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Categoria não encontrada")
	}
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
