package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vinicius-Leon/leons-cupcake/internal/logger"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Erro string `json:"erro"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Erro: he.Message})
	}

	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: ve.Message})
	}
	var nf *usecase.NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: nf.Message})
	}
	var is *usecase.InsufficientStockError
	if errors.As(err, &is) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: is.Error()})
	}

	//想定外は中身を晒さずログだけ残す
	logger.L().Error("unhandled error", zap.Error(err), zap.String("path", c.Request().URL.Path))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Erro: "Erro interno"})
}

func parseIDParam(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// /api/produtos の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/produtos", h.list)
	g.GET("/produtos/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
