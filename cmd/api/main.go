package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "trustchain-backend/internal/adapter/http"
	mw "trustchain-backend/internal/adapter/middleware"
	"trustchain-backend/internal/adapter/repository/mysql"
	"trustchain-backend/internal/config"
	"trustchain-backend/internal/infrastructure/cache"
	"trustchain-backend/internal/infrastructure/db"
	"trustchain-backend/internal/infrastructure/geocode"
	"trustchain-backend/internal/infrastructure/model"
	borroweruc "trustchain-backend/internal/usecase/borrower"
	regionuc "trustchain-backend/internal/usecase/region"
	scoringuc "trustchain-backend/internal/usecase/scoring"
	statsuc "trustchain-backend/internal/usecase/stats"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The classifier is a startup dependency: refusing to boot without it
	// beats serving unscoreable requests.
	classifier, err := model.LoadLogistic(cfg.ModelPath)
	if err != nil {
		log.Fatalf("load scoring model: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}

	geocoder := geocode.NewCached(
		geocode.NewClient(cfg.GeocodeBaseURL, time.Duration(cfg.GeocodeTimeoutSecs)*time.Second),
		rdb,
		time.Duration(cfg.GeocodeCacheTTLSecs)*time.Second,
	)

	borrowerRepo := mysql.NewBorrowerRepository(gdb)
	regionRepo := mysql.NewRegionRepository(gdb)
	statsRepo := mysql.NewStatsRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	scorerUC := scoringuc.NewUsecase(classifier)
	regionUC := regionuc.NewUsecase(regionRepo, geocoder, unit)
	borrowerUC := borroweruc.NewUsecase(borrowerRepo, regionUC, scorerUC, unit)
	statsUC := statsuc.NewUsecase(statsRepo)

	h := httpadp.NewHandler()
	bh := httpadp.NewBorrowerHandler(borrowerUC)
	sh := httpadp.NewScoringHandler(scorerUC)
	gh := httpadp.NewStatsHandler(statsUC)
	rh := httpadp.NewRegionHandler(regionUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	e.GET("/health", h.Health)
	e.POST("/api/credit-score", sh.ScoreFeatures)

	api := e.Group("/api", mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.POST("/borrowers", bh.CreateBorrower)
	api.GET("/borrowers", bh.ListBorrowers)
	api.GET("/borrowers/:borrower_id", bh.GetBorrower)
	api.DELETE("/borrowers/:borrower_id", bh.DeleteBorrower)
	api.GET("/borrowers/:borrower_id/transactions", bh.ListTransactions)
	api.POST("/borrowers/:borrower_id/transactions", bh.AddTransaction)
	api.GET("/borrowers/:borrower_id/documents", bh.ListDocuments)
	api.POST("/borrowers/:borrower_id/documents", bh.AddDocument)
	api.DELETE("/regions/:region_id", rh.DeleteRegion)
	api.GET("/stats/global", gh.GlobalStats)
	api.GET("/stats/regions", gh.RegionStats)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
