package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	users repo.UserRepository
}

func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// 更新できるのは本人情報のみ。tipo_usuarioやativoはここでは触らせない。
type UpdateUserInput struct {
	Nome      *string
	Sobrenome *string
	Telefone  *string
	Senha     *string
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]UserOutput, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	outs := make([]UserOutput, 0, len(users))
	for i := range users {
		outs = append(outs, toUserOutput(&users[i]))
	}
	return outs, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewValidationError("id inválido")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
	}
	if err != nil {
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}
	return toUserOutput(user), nil
}

func (u *UserUsecase) UpdateUser(ctx context.Context, userID int64, in UpdateUserInput) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewValidationError("id inválido")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
	}
	if err != nil {
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}

	if in.Nome != nil {
		nome := strings.TrimSpace(*in.Nome)
		if nome == "" {
			return UserOutput{}, NewValidationError("Nome não pode ser vazio")
		}
		user.Nome = nome
	}
	if in.Sobrenome != nil {
		user.Sobrenome = strings.TrimSpace(*in.Sobrenome)
	}
	if in.Telefone != nil {
		user.Telefone = strings.TrimSpace(*in.Telefone)
	}
	if in.Senha != nil {
		if len(*in.Senha) < 6 {
			return UserOutput{}, NewValidationError("Senha deve ter no mínimo 6 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return UserOutput{}, fmt.Errorf("hash password: %w", err)
		}
		user.SenhaHash = string(hash)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return UserOutput{}, fmt.Errorf("update user: %w", err)
	}
	return toUserOutput(user), nil
}

// 管理者がアカウントを有効/無効にする
func (u *UserUsecase) SetAtivo(ctx context.Context, userID int64, ativo bool) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewValidationError("id inválido")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
		return UserOutput{}, NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
	}
	if err != nil {
		return UserOutput{}, fmt.Errorf("find user: %w", err)
	}

	user.Ativo = ativo
	if err := u.users.Update(ctx, user); err != nil {
		return UserOutput{}, fmt.Errorf("update user: %w", err)
	}
	return toUserOutput(user), nil
}

func (u *UserUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewValidationError("id inválido")
	}

	err := u.users.Delete(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		return NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// 配達員候補の一覧（entregadorかつativo）
func (u *UserUsecase) ListCouriers(ctx context.Context) ([]UserOutput, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	outs := make([]UserOutput, 0)
	for i := range users {
		if users[i].Tipo == model.RoleEntregador && users[i].Ativo {
			outs = append(outs, toUserOutput(&users[i]))
		}
	}
	return outs, nil
}
