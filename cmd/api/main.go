package main

import (
	"github.com/Vinicius-Leon/leons-cupcake/internal/config"
	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	"github.com/Vinicius-Leon/leons-cupcake/internal/handler"
	"github.com/Vinicius-Leon/leons-cupcake/internal/infra/db"
	infraRepo "github.com/Vinicius-Leon/leons-cupcake/internal/infra/repository"
	"github.com/Vinicius-Leon/leons-cupcake/internal/logger"
	"github.com/Vinicius-Leon/leons-cupcake/internal/server"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.GoEnv)
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.L().Fatal("db connect", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Delivery{},
		&model.Address{},
		&model.StockAdjustment{},
	); err != nil {
		logger.L().Fatal("auto migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo)
	userUC := usecase.NewUserUsecase(userRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo, txManager)
	orderUC := usecase.NewOrderUsecase(txManager)
	deliveryUC := usecase.NewDeliveryUsecase(txManager)
	addressUC := usecase.NewAddressUsecase(addressRepo)

	//Handler生成
	hs := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		User:         handler.NewUserHandler(userUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC),
		Delivery:     handler.NewDeliveryHandler(deliveryUC),
		Address:      handler.NewAddressHandler(addressUC),
	}

	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, hs)

	logger.L().Info("starting api", zap.String("port", cfg.Port))
	if err := server.Start(e, cfg); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
