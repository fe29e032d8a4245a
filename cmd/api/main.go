package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "edulend-backend/internal/adapter/http"
	mw "edulend-backend/internal/adapter/middleware"
	"edulend-backend/internal/adapter/repository/mysql"
	"edulend-backend/internal/config"
	appDomain "edulend-backend/internal/domain/application"
	docDomain "edulend-backend/internal/domain/document"
	histDomain "edulend-backend/internal/domain/history"
	noteDomain "edulend-backend/internal/domain/note"
	"edulend-backend/internal/infrastructure/cache"
	"edulend-backend/internal/infrastructure/db"
	"edulend-backend/internal/infrastructure/storage"
	appuc "edulend-backend/internal/usecase/application"
	docuc "edulend-backend/internal/usecase/document"
	reportuc "edulend-backend/internal/usecase/reporting"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&appDomain.Application{},
		&docDomain.Document{},
		&histDomain.Entry{},
		&noteDomain.Note{},
	); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	apps := mysql.NewApplicationRepository(gdb)
	docs := mysql.NewDocumentRepository(gdb)
	hist := mysql.NewHistoryRepository(gdb)
	notes := mysql.NewNoteRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	appUC := appuc.NewUsecase(apps, docs, hist, notes, uow)
	docUC := docuc.NewUsecase(apps, docs, uow)
	reportUC := reportuc.NewUsecase(apps)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC, store.Remove)
	docH := httpadp.NewDocumentHandler(docUC, store)
	adminH := httpadp.NewAdminHandler(appUC, docUC, reportUC)

	auth := mw.Auth([]byte(cfg.JWTSecret))

	var idem echo.MiddlewareFunc
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, idempotency disabled: %v", err)
	} else {
		idem = mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	httpadp.RegisterRoutes(e, h, appH, docH, adminH, auth, idem)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
