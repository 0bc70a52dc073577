package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	pr repo.ProductRepository
	cr repo.CategoryRepository
	tx repo.TransactionManager
}

func NewProductUsecase(pr repo.ProductRepository, cr repo.CategoryRepository, tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{pr: pr, cr: cr, tx: tx}
}

type ProductInput struct {
	Nome        string
	Descricao   string
	Preco       float64
	Quantidade  int64
	CategoriaID *int64
	ImagemURL   string
	Ativo       *bool
}

type ProductOutput struct {
	ID          int64     `json:"id_produto"`
	CategoriaID *int64    `json:"id_categoria"`
	Nome        string    `json:"nome"`
	Descricao   string    `json:"descricao"`
	Preco       float64   `json:"preco"`
	Quantidade  int64     `json:"quantidade"`
	ImagemURL   string    `json:"imagem_url"`
	Ativo       bool      `json:"ativo"`
	CriadoEm    time.Time `json:"criado_em"`
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		CategoriaID: p.CategoriaID,
		Nome:        p.Nome,
		Descricao:   p.Descricao,
		Preco:       p.Preco.InexactFloat64(),
		Quantidade:  p.Quantidade,
		ImagemURL:   p.ImagemURL,
		Ativo:       p.Ativo,
		CriadoEm:    p.CreatedAt,
	}
}

// 公開中の商品一覧
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]ProductOutput, error) {
	products, err := u.pr.ListAtivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	outs := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		outs = append(outs, toProductOutput(p))
	}
	return outs, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewValidationError("id inválido")
	}

	p, err := u.pr.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "Produto não encontrado")
	}
	if err != nil {
		return ProductOutput{}, fmt.Errorf("find product: %w", err)
	}
	return toProductOutput(p), nil
}

func (u *ProductUsecase) validate(ctx context.Context, in ProductInput) error {
	if strings.TrimSpace(in.Nome) == "" {
		return NewValidationError("Nome é obrigatório")
	}
	if in.Preco <= 0 {
		return NewValidationError("Preço deve ser positivo")
	}
	if in.Quantidade < 0 {
		return NewValidationError("Quantidade não pode ser negativa")
	}
	if in.CategoriaID != nil {
		if _, err := u.cr.FindByID(ctx, *in.CategoriaID); errors.Is(err, repo.ErrNotFound) {
			return NewValidationError("Categoria %d não encontrada", *in.CategoriaID)
		} else if err != nil {
			return fmt.Errorf("find category: %w", err)
		}
	}
	return nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (ProductOutput, error) {
	if err := u.validate(ctx, in); err != nil {
		return ProductOutput{}, err
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}

	p := model.Product{
		CategoriaID: in.CategoriaID,
		Nome:        strings.TrimSpace(in.Nome),
		Descricao:   strings.TrimSpace(in.Descricao),
		Preco:       decimal.NewFromFloat(in.Preco),
		Quantidade:  in.Quantidade,
		ImagemURL:   strings.TrimSpace(in.ImagemURL),
		Ativo:       ativo,
	}

	created, err := u.pr.Create(ctx, p)
	if err != nil {
		return ProductOutput{}, fmt.Errorf("create product: %w", err)
	}
	return toProductOutput(created), nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewValidationError("id inválido")
	}
	if err := u.validate(ctx, in); err != nil {
		return ProductOutput{}, err
	}

	p, err := u.pr.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "Produto não encontrado")
	}
	if err != nil {
		return ProductOutput{}, fmt.Errorf("find product: %w", err)
	}

	p.CategoriaID = in.CategoriaID
	p.Nome = strings.TrimSpace(in.Nome)
	p.Descricao = strings.TrimSpace(in.Descricao)
	p.Preco = decimal.NewFromFloat(in.Preco)
	p.ImagemURL = strings.TrimSpace(in.ImagemURL)
	if in.Ativo != nil {
		p.Ativo = *in.Ativo
	}

	if err := u.pr.Update(ctx, p); err != nil {
		return ProductOutput{}, fmt.Errorf("update product: %w", err)
	}
	return toProductOutput(p), nil
}

// 論理削除。注文履歴側のスナップショットは残る。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidationError("id inválido")
	}

	err := u.pr.SoftDelete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Produto não encontrado")
	}
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// 管理者による在庫再設定。履歴(ajustes_estoque)も同じTxで残す。
func (u *ProductUsecase) SetEstoque(ctx context.Context, productID, adminID, novoEstoque int64, motivo string) (ProductOutput, error) {
	if productID <= 0 {
		return ProductOutput{}, NewValidationError("id inválido")
	}
	if novoEstoque < 0 {
		return ProductOutput{}, NewValidationError("Quantidade não pode ser negativa")
	}
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return ProductOutput{}, NewValidationError("Motivo é obrigatório")
	}

	var out ProductOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Produto não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find product: %w", err)
		}

		if err := r.Inventory().SetEstoque(ctx, productID, novoEstoque); err != nil {
			return fmt.Errorf("set stock: %w", err)
		}

		ajuste := model.StockAdjustment{
			ProductID:   productID,
			AdminUserID: adminID,
			Delta:       novoEstoque - p.Quantidade,
			Motivo:      motivo,
		}
		if err := r.Inventory().CreateAjuste(ctx, ajuste); err != nil {
			return fmt.Errorf("create adjustment: %w", err)
		}

		p.Quantidade = novoEstoque
		out = toProductOutput(p)
		return nil
	})

	if err != nil {
		return ProductOutput{}, err
	}
	return out, nil
}
