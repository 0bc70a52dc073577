package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "segredo-de-teste"

func testCfg() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":          "7",
		"tipo_usuario": "cliente",
		"iat":          now.Unix(),
		"exp":          now.Add(time.Hour).Unix(),
	}
}

func doRequest(authz string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pedidos", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	_ = h(c)
	return rec, c
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := doRequest("", AuthJWT(testCfg()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "erro")
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec, _ := doRequest("Token abc", AuthJWT(testCfg()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	tok := signToken(t, validClaims(), "outro-segredo")
	rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_Expired(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	tok := signToken(t, claims, testSecret)

	rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_OK_SetsContext(t *testing.T) {
	tok := signToken(t, validClaims(), testSecret)

	rec, c := doRequest("Bearer "+tok, AuthJWT(testCfg()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(CtxUserIDKey))
	assert.Equal(t, "cliente", c.Get(CtxUserTipoKey))
}

func TestAdminRoleGuard_Forbidden(t *testing.T) {
	claims := validClaims()
	tok := signToken(t, claims, testSecret)

	rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()), AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AllowsAdmin(t *testing.T) {
	claims := validClaims()
	claims["tipo_usuario"] = "admin"
	tok := signToken(t, claims, testSecret)

	rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()), AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEntregadorRoleGuard_AllowsCourierAndAdmin(t *testing.T) {
	for _, tipo := range []string{"entregador", "admin"} {
		claims := validClaims()
		claims["tipo_usuario"] = tipo
		tok := signToken(t, claims, testSecret)

		rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()), EntregadorRoleGuard())
		assert.Equal(t, http.StatusOK, rec.Code, "tipo=%s", tipo)
	}

	tok := signToken(t, validClaims(), testSecret)
	rec, _ := doRequest("Bearer "+tok, AuthJWT(testCfg()), EntregadorRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
