package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "cryptolend-backend/internal/adapter/http"
	"cryptolend-backend/internal/adapter/middleware"
	"cryptolend-backend/internal/adapter/repository/mysql"
	"cryptolend-backend/internal/config"
	"cryptolend-backend/internal/domain/cryptocurrency"
	"cryptolend-backend/internal/domain/deal"
	"cryptolend-backend/internal/domain/interestterm"
	"cryptolend-backend/internal/domain/loanrequest"
	"cryptolend-backend/internal/domain/user"
	"cryptolend-backend/internal/engine"
	"cryptolend-backend/internal/infrastructure/cache"
	"cryptolend-backend/internal/infrastructure/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&cryptocurrency.Cryptocurrency{},
		&interestterm.InterestTerm{},
		&loanrequest.LoanRequest{},
		&deal.Deal{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	users := mysql.NewUserRepository(gdb)
	cryptos := mysql.NewCryptocurrencyRepository(gdb)
	terms := mysql.NewInterestTermRepository(gdb)
	requests := mysql.NewLoanRequestRepository(gdb)
	deals := mysql.NewDealRepository(gdb)

	eng := engine.New(mysql.NewGormUoW(gdb))

	h := httpadp.NewHandler()
	uh := httpadp.NewUserHandler(eng, users)
	rh := httpadp.NewRefDataHandler(eng, cryptos, terms)
	lh := httpadp.NewLoanRequestHandler(eng, requests)
	dh := httpadp.NewDealHandler(eng, deals)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/users", uh.CreateUser, idemp)
	e.GET("/users/:user_id", uh.GetUser)

	e.POST("/cryptocurrencies", rh.CreateCryptocurrency, idemp)
	e.GET("/cryptocurrencies/:crypto_id", rh.GetCryptocurrency)

	e.POST("/interest-terms", rh.CreateInterestTerm, idemp)
	e.GET("/interest-terms/:term_id", rh.GetInterestTerm)

	e.POST("/loan-requests", lh.CreateLoanRequest, idemp)
	e.GET("/loan-requests/:request_id", lh.GetLoanRequest)

	e.POST("/deals", dh.CreateDeal, idemp)
	e.PATCH("/deals/:deal_id", dh.UpdateDeal, idemp)
	e.GET("/deals/:deal_id", dh.GetDeal)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
