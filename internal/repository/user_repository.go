package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// ユーザー情報の更新
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID int64) error
	//最終ログイン時刻の更新
	UpdateUltimoAcesso(ctx context.Context, userID int64, quando time.Time) error
}
