package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/config"
	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 24 * time.Hour

type AuthUsecase struct {
	cfg   config.Config
	users repo.UserRepository
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users}
}

type RegisterInput struct {
	Nome      string
	Sobrenome string
	Email     string
	Telefone  string
	Senha     string
	Tipo      string
}

type UserOutput struct {
	ID           int64      `json:"id_usuario"`
	Nome         string     `json:"nome"`
	Sobrenome    string     `json:"sobrenome"`
	Email        string     `json:"email"`
	Telefone     string     `json:"telefone"`
	Tipo         string     `json:"tipo_usuario"`
	Ativo        bool       `json:"ativo"`
	UltimoAcesso *time.Time `json:"ultimo_acesso"`
	CriadoEm     time.Time  `json:"criado_em"`
}

type LoginOutput struct {
	Token     string     `json:"access_token"`
	ExpiresIn int        `json:"expires_in"`
	Usuario   UserOutput `json:"usuario"`
}

func toUserOutput(u *model.User) UserOutput {
	return UserOutput{
		ID:           u.ID,
		Nome:         u.Nome,
		Sobrenome:    u.Sobrenome,
		Email:        u.Email,
		Telefone:     u.Telefone,
		Tipo:         string(u.Tipo),
		Ativo:        u.Ativo,
		UltimoAcesso: u.UltimoAcesso,
		CriadoEm:     u.CreatedAt,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return UserOutput{}, NewValidationError("nome, email e senha são obrigatórios")
	}
	if !strings.Contains(in.Email, "@") {
		return UserOutput{}, NewValidationError("Email inválido")
	}
	if len(in.Senha) < 6 {
		return UserOutput{}, NewValidationError("Senha deve ter no mínimo 6 caracteres")
	}

	//公開登録で作れるのはclienteとentregadorだけ
	tipo := model.RoleCliente
	switch in.Tipo {
	case "", string(model.RoleCliente):
	case string(model.RoleEntregador):
		tipo = model.RoleEntregador
	default:
		return UserOutput{}, NewValidationError("Tipo de usuário '%s' inválido", in.Tipo)
	}

	if existente, err := u.users.FindByEmail(ctx, in.Email); err == nil && existente != nil {
		return UserOutput{}, NewHTTPError(http.StatusConflict, "Email já cadastrado")
	} else if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return UserOutput{}, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Nome:      in.Nome,
		Sobrenome: strings.TrimSpace(in.Sobrenome),
		Email:     in.Email,
		Telefone:  strings.TrimSpace(in.Telefone),
		SenhaHash: string(hash),
		Tipo:      tipo,
		Ativo:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return UserOutput{}, fmt.Errorf("create user: %w", err)
	}

	return toUserOutput(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, senha string) (LoginOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		return LoginOutput{}, NewValidationError("email e senha são obrigatórios")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Email ou senha inválidos")
	}
	if err != nil {
		return LoginOutput{}, fmt.Errorf("find user: %w", err)
	}

	//停止ユーザーはログイン不可
	if !user.Ativo {
		return LoginOutput{}, NewHTTPError(http.StatusForbidden, "Usuário desativado")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Email ou senha inválidos")
	}

	//ultimo_acesso更新。失敗してもログインは通す
	_ = u.users.UpdateUltimoAcesso(ctx, user.ID, time.Now())

	token, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginOutput{
		Token:     token,
		ExpiresIn: expiresIn,
		Usuario:   toUserOutput(user),
	}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "Não autenticado")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "Não autenticado")
	}
	if err != nil {
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}
	if !user.Ativo {
		return UserOutput{}, NewHTTPError(http.StatusForbidden, "Usuário desativado")
	}

	return toUserOutput(user), nil
}

// Refresh は有効なトークンを持つユーザーに新しいトークンを発行する
func (u *AuthUsecase) Refresh(ctx context.Context, userID int64) (LoginOutput, error) {
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Não autenticado")
	}
	if err != nil {
		return LoginOutput{}, fmt.Errorf("find user: %w", err)
	}
	if !user.Ativo {
		return LoginOutput{}, NewHTTPError(http.StatusForbidden, "Usuário desativado")
	}

	token, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginOutput{
		Token:     token,
		ExpiresIn: expiresIn,
		Usuario:   toUserOutput(user),
	}, nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User) (string, int, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          strconv.FormatInt(user.ID, 10),
		"tipo_usuario": string(user.Tipo),
		"jti":          uuid.NewString(),
		"iat":          now.Unix(),
		"exp":          now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int(accessTokenTTL.Seconds()), nil
}
