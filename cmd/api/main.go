package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/catalog"
	"app/internal/server"
	"app/internal/shipping"
	"app/internal/usecase"
	"app/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くても起動できる
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//カタログとカート（シングルトンではなく明示的に組み立てて渡す）
	cat := catalog.NewHTTPCatalog(cfg.CatalogURL, cfg.FetchTimeout, log)
	cart := model.NewCart()

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	postal := shipping.NewPostalClient(cfg.PostalLookupURL, cfg.FetchTimeout)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cat, cart)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, postal, idGen, clock, log)

	//Handler生成
	productH := handler.NewProductHandler(cartUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(productH, cartH, checkoutH)

	log.Info("server starting",
		zap.String("addr", addr),
		zap.String("catalog_url", cfg.CatalogURL))

	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
