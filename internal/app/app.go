package app

import (
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/phenrril/logihub/internal/adapters/excel"
	"github.com/phenrril/logihub/internal/adapters/httpserver"
	"github.com/phenrril/logihub/internal/adapters/repo/postgres"
	"github.com/phenrril/logihub/internal/domain"
	"github.com/phenrril/logihub/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	MasterUC    *usecase.MasterUC
	ReconcileUC *usecase.ReconcileUC
	SalesUC     *usecase.SalesUC
	StatsUC     *usecase.StatsUC
	Cache       *excel.Cache
	DataDir     string
}

func NewApp(db *gorm.DB) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	salesRepo := postgres.NewSalesRepo(db)
	cache := excel.NewCache()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	a := &App{
		DB:          db,
		MasterUC:    &usecase.MasterUC{Products: prodRepo},
		ReconcileUC: &usecase.ReconcileUC{Products: prodRepo, Cache: cache},
		SalesUC:     &usecase.SalesUC{Products: prodRepo, Sales: salesRepo},
		StatsUC:     &usecase.StatsUC{Sales: salesRepo},
		Cache:       cache,
		DataDir:     dataDir,
	}
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.MasterUC, a.ReconcileUC, a.SalesUC, a.StatsUC, a.Cache, a.DataDir)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Product{}, &domain.SalesHistory{}, &domain.Transaction{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_haeun_code ON products(haeun_code)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_hankook_code ON products(hankook_code)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_sales_histories_date ON sales_histories(date)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_sales_histories_dedup ON sales_histories(date, product_id, qty, remarks)").Error

	return nil
}
