package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 本人の住所のみ操作できる
type AddressHandler struct {
	uc *usecase.AddressUsecase
}

func NewAddressHandler(uc *usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

type AddressRequest struct {
	CEP         string `json:"cep"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Rua         string `json:"rua"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Referencia  string `json:"referencia"`
	IsDefault   bool   `json:"is_default"`
}

func (h *AddressHandler) RegisterRoutes(authed *echo.Group) {
	g := authed.Group("/enderecos")

	g.POST("", h.create)
	g.GET("", h.list)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
	g.PUT("/:id/padrao", h.setDefault)
}

func toAddressInput(req AddressRequest) usecase.AddressInput {
	return usecase.AddressInput{
		CEP:         req.CEP,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		Rua:         req.Rua,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Referencia:  req.Referencia,
		IsDefault:   req.IsDefault,
	}
}

func (h *AddressHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.CreateAddress(c.Request().Context(), userID, toAddressInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AddressHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	out, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AddressHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.UpdateAddress(c.Request().Context(), userID, id, toAddressInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AddressHandler) remove(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AddressHandler) setDefault(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Endereço padrão atualizado"})
}
