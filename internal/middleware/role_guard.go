package middleware

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているtipo_usuarioがadminかどうかを確認します。

func AdminRoleGuard() echo.MiddlewareFunc {
	return roleGuard(model.RoleAdmin)
}

// 配達員またはadminだけ許可
func EntregadorRoleGuard() echo.MiddlewareFunc {
	return roleGuard(model.RoleEntregador, model.RoleAdmin)
}

func roleGuard(allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawTipo := c.Get(CtxUserTipoKey)
			tipo, ok := rawTipo.(string)
			if !ok || tipo == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Não autenticado"))
			}

			for _, r := range allowed {
				if tipo == string(r) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errorJSON("Acesso negado"))
		}
	}
}
