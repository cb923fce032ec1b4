package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"techinventory/internal/config"
	"techinventory/internal/db"
	"techinventory/internal/httpserver"
	categoryrepo "techinventory/internal/repository/category"
	itemrepo "techinventory/internal/repository/item"
	categorysvc "techinventory/internal/service/category"
	inventorysvc "techinventory/internal/service/inventory"
	itemsvc "techinventory/internal/service/item"
	"techinventory/internal/upload"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	uploads, err := upload.New(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("init upload storage: %v", err)
	}

	categoryRepo := categoryrepo.NewPostgres(dbpool, logger)
	itemRepo := itemrepo.NewPostgres(dbpool, logger)
	categoryService := categorysvc.New(categoryRepo, itemRepo, cfg.AdminPassword)
	itemService := itemsvc.New(itemRepo, categoryRepo)
	inventoryService := inventorysvc.New(itemRepo, categoryRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc:  categoryService,
		ItemSvc:      itemService,
		InventorySvc: inventoryService,
		Uploads:      uploads,
	}, cfg.TemplateGlob)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
