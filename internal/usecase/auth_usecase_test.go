package usecase_test

import (
	"context"
	"testing"

	"github.com/Vinicius-Leon/leons-cupcake/internal/config"
	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "segredo-de-teste"}
}

func TestAuthUsecase_Register_MissingFields(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{Email: "a@b.com"})
	assertErrContains(t, err, "obrigatórios")
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Nome: "Maria", Email: "maria@example.com", Senha: "123",
	})
	assertErrContains(t, err, "no mínimo 6")
}

func TestAuthUsecase_Register_AdminNotAllowed(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Nome: "Maria", Email: "maria@example.com", Senha: "segredo123", Tipo: "admin",
	})
	assertErrContains(t, err, "inválido")
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(clienteAtivo(1), nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Nome: "Maria", Email: "maria@example.com", Senha: "segredo123",
	})
	assertErrContains(t, err, "Email já cadastrado")

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_Success_HashesPassword(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, repo.ErrUserNotFound)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*model.User)
		u.ID = 1
	}).Return(nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Nome: "Maria", Sobrenome: "Silva", Email: "Maria@Example.com", Senha: "segredo123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "maria@example.com", out.Email)
	assert.Equal(t, string(model.RoleCliente), out.Tipo)

	//保存されたのはハッシュで、平文のまま照合できる
	created := users.Calls[1].Arguments.Get(1).(*model.User)
	assert.NotEqual(t, "segredo123", created.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.SenhaHash), []byte("segredo123")))
}

func loginReadyUser(senha string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	return &model.User{
		ID: 1, Nome: "Maria", Email: "maria@example.com",
		SenhaHash: string(hash), Tipo: model.RoleCliente, Ativo: true,
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(loginReadyUser("segredo123"), nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Login(context.Background(), "maria@example.com", "errada")
	assertErrContains(t, err, "Email ou senha inválidos")
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "quem@example.com").Return(nil, repo.ErrUserNotFound)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Login(context.Background(), "quem@example.com", "segredo123")
	assertErrContains(t, err, "Email ou senha inválidos")
}

func TestAuthUsecase_Login_InactiveUser(t *testing.T) {
	u := loginReadyUser("segredo123")
	u.Ativo = false

	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(u, nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Login(context.Background(), "maria@example.com", "segredo123")
	assertErrContains(t, err, "desativado")
}

func TestAuthUsecase_Login_Success_IssuesToken(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByEmail", mock.Anything, "maria@example.com").Return(loginReadyUser("segredo123"), nil)
	users.On("UpdateUltimoAcesso", mock.Anything, int64(1), mock.Anything).Return(nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	out, err := uc.Login(context.Background(), "maria@example.com", "segredo123")
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.Usuario.ID)

	//発行したtokenが自分のsecretで検証できる
	tok, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("segredo-de-teste"), nil
	})
	assert.NoError(t, err)
	assert.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "cliente", claims["tipo_usuario"])

	users.AssertCalled(t, "UpdateUltimoAcesso", mock.Anything, int64(1), mock.Anything)
}

func TestAuthUsecase_Refresh_IssuesNewToken(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByID", mock.Anything, int64(1)).Return(loginReadyUser("segredo123"), nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	out, err := uc.Refresh(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.Usuario.ID)
}

func TestAuthUsecase_Refresh_InactiveUser(t *testing.T) {
	u := loginReadyUser("segredo123")
	u.Ativo = false

	users := new(UserRepoMock)
	users.On("FindByID", mock.Anything, int64(1)).Return(u, nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Refresh(context.Background(), 1)
	assertErrContains(t, err, "desativado")
}

func TestAuthUsecase_Me_Inactive(t *testing.T) {
	u := loginReadyUser("segredo123")
	u.Ativo = false

	users := new(UserRepoMock)
	users.On("FindByID", mock.Anything, int64(1)).Return(u, nil)

	uc := usecase.NewAuthUsecase(testConfig(), users)

	_, err := uc.Me(context.Background(), 1)
	assertErrContains(t, err, "desativado")
}
