package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type UserUpdateRequest struct {
	Nome      *string `json:"nome"`
	Sobrenome *string `json:"sobrenome"`
	Telefone  *string `json:"telefone"`
	Senha     *string `json:"senha"`
}

type AtivoRequest struct {
	Ativo bool `json:"ativo"`
}

func (h *UserHandler) RegisterRoutes(authed *echo.Group, admin *echo.Group) {
	authed.GET("/usuarios/:id", h.detail)
	authed.PUT("/usuarios/:id", h.update)

	admin.GET("/usuarios", h.list)
	admin.GET("/usuarios/entregadores", h.listCouriers)
	admin.PUT("/usuarios/:id/ativo", h.setAtivo)
	admin.DELETE("/usuarios/:id", h.remove)
}

func (h *UserHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}
	//他人のプロフィールはadminだけ
	if id != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	out, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}
	if id != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Telefone:  req.Telefone,
		Senha:     req.Senha,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) listCouriers(c echo.Context) error {
	out, err := h.uc.ListCouriers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) setAtivo(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req AtivoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.SetAtivo(c.Request().Context(), id, req.Ativo)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
