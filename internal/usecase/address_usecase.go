package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"
)

// 12345-678形式
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

type AddressUsecase struct {
	ar repo.AddressRepository
}

func NewAddressUsecase(ar repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{ar: ar}
}

type AddressInput struct {
	CEP         string
	Cidade      string
	Estado      string
	Rua         string
	Numero      string
	Complemento string
	Referencia  string
	IsDefault   bool
}

func validateAddress(in AddressInput) error {
	if !cepPattern.MatchString(strings.TrimSpace(in.CEP)) {
		return NewValidationError("CEP inválido")
	}
	if strings.TrimSpace(in.Cidade) == "" || strings.TrimSpace(in.Rua) == "" || strings.TrimSpace(in.Numero) == "" {
		return NewValidationError("cidade, rua e numero são obrigatórios")
	}
	if len(strings.TrimSpace(in.Estado)) != 2 {
		return NewValidationError("Estado deve ser a sigla de 2 letras")
	}
	return nil
}

func (u *AddressUsecase) CreateAddress(ctx context.Context, userID int64, in AddressInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewValidationError("id inválido")
	}
	if err := validateAddress(in); err != nil {
		return model.Address{}, err
	}

	a := model.Address{
		UserID:      userID,
		CEP:         strings.TrimSpace(in.CEP),
		Cidade:      strings.TrimSpace(in.Cidade),
		Estado:      strings.ToUpper(strings.TrimSpace(in.Estado)),
		Rua:         strings.TrimSpace(in.Rua),
		Numero:      strings.TrimSpace(in.Numero),
		Complemento: strings.TrimSpace(in.Complemento),
		Referencia:  strings.TrimSpace(in.Referencia),
	}

	created, err := u.ar.Create(ctx, a)
	if err != nil {
		return model.Address{}, fmt.Errorf("create address: %w", err)
	}

	//最初の住所、またはis_default指定ならデフォルトに昇格
	existentes, err := u.ar.ListByUserID(ctx, userID)
	if err != nil {
		return model.Address{}, fmt.Errorf("list addresses: %w", err)
	}
	if in.IsDefault || len(existentes) == 1 {
		if err := u.ar.SetDefault(ctx, userID, created.ID); err != nil {
			return model.Address{}, fmt.Errorf("set default: %w", err)
		}
		created.IsDefault = true
	}

	return created, nil
}

func (u *AddressUsecase) ListAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if userID <= 0 {
		return nil, NewValidationError("id inválido")
	}

	as, err := u.ar.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	if as == nil {
		as = []model.Address{}
	}
	return as, nil
}

// 本人の住所だけ更新できる
func (u *AddressUsecase) UpdateAddress(ctx context.Context, userID, addressID int64, in AddressInput) (model.Address, error) {
	if userID <= 0 || addressID <= 0 {
		return model.Address{}, NewValidationError("id inválido")
	}
	if err := validateAddress(in); err != nil {
		return model.Address{}, err
	}

	ok, err := u.ar.IsOwnedByUser(ctx, addressID, userID)
	if err != nil {
		return model.Address{}, fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "Endereço não encontrado")
	}

	a, err := u.ar.FindByID(ctx, addressID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "Endereço não encontrado")
	}
	if err != nil {
		return model.Address{}, fmt.Errorf("find address: %w", err)
	}

	a.CEP = strings.TrimSpace(in.CEP)
	a.Cidade = strings.TrimSpace(in.Cidade)
	a.Estado = strings.ToUpper(strings.TrimSpace(in.Estado))
	a.Rua = strings.TrimSpace(in.Rua)
	a.Numero = strings.TrimSpace(in.Numero)
	a.Complemento = strings.TrimSpace(in.Complemento)
	a.Referencia = strings.TrimSpace(in.Referencia)

	if err := u.ar.Update(ctx, a); err != nil {
		return model.Address{}, fmt.Errorf("update address: %w", err)
	}

	if in.IsDefault && !a.IsDefault {
		if err := u.ar.SetDefault(ctx, userID, addressID); err != nil {
			return model.Address{}, fmt.Errorf("set default: %w", err)
		}
		a.IsDefault = true
	}

	return a, nil
}

func (u *AddressUsecase) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if userID <= 0 || addressID <= 0 {
		return NewValidationError("id inválido")
	}

	ok, err := u.ar.IsOwnedByUser(ctx, addressID, userID)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Endereço não encontrado")
	}

	if err := u.ar.Delete(ctx, addressID); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func (u *AddressUsecase) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	if userID <= 0 || addressID <= 0 {
		return NewValidationError("id inválido")
	}

	ok, err := u.ar.IsOwnedByUser(ctx, addressID, userID)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Endereço não encontrado")
	}

	if err := u.ar.SetDefault(ctx, userID, addressID); err != nil {
		return fmt.Errorf("set default: %w", err)
	}
	return nil
}
