package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/produtos の管理API
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductRequest struct {
	Nome        string  `json:"nome"`
	Descricao   string  `json:"descricao"`
	Preco       float64 `json:"preco"`
	Quantidade  int64   `json:"quantidade"`
	CategoriaID *int64  `json:"id_categoria"`
	ImagemURL   string  `json:"imagem_url"`
	Ativo       *bool   `json:"ativo"`
}

type EstoqueRequest struct {
	Quantidade int64  `json:"quantidade"`
	Motivo     string `json:"motivo"`
}

func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/produtos", h.create)
	admin.PUT("/produtos/:id", h.update)
	admin.DELETE("/produtos/:id", h.remove)
	admin.PUT("/produtos/:id/estoque", h.setEstoque)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Preco:       req.Preco,
		Quantidade:  req.Quantidade,
		CategoriaID: req.CategoriaID,
		ImagemURL:   req.ImagemURL,
		Ativo:       req.Ativo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.ProductInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Preco:       req.Preco,
		Quantidade:  req.Quantidade,
		CategoriaID: req.CategoriaID,
		ImagemURL:   req.ImagemURL,
		Ativo:       req.Ativo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// 在庫の再設定。調整履歴に実行者を残す。
func (h *AdminProductHandler) setEstoque(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req EstoqueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.SetEstoque(c.Request().Context(), id, adminID, req.Quantidade, req.Motivo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
