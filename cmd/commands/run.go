package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"citystore"
	"citystore/config"
	"citystore/internal/application/usecase"
	blobRepository "citystore/internal/domain/repository/blob"
	brokerRepository "citystore/internal/domain/repository/broker"
	"citystore/internal/infrastructure/broker"
	"citystore/internal/infrastructure/database"
	"citystore/internal/infrastructure/localfs"
	"citystore/internal/infrastructure/minio"
	"citystore/internal/infrastructure/staging"
	"citystore/internal/presentation"
	"citystore/internal/presentation/handler"
	"citystore/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running citystore", "version", citystore.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	stager, err := staging.New(cfg.Staging)
	if err != nil {
		ExitOnError(err)
	}

	var blobs blobRepository.Store
	var localStore *localfs.Store

	switch cfg.Storage.Backend {
	case config.BackendMinIO:
		minioClient, err := minio.New(&cfg.MinIOClient)
		if err != nil {
			ExitOnError(err)
		}

		store := minio.NewStore(minioClient.MinioClient, &cfg.MinIOStore)
		if err := store.EnsureBucket(context.Background()); err != nil {
			ExitOnError(err)
		}
		blobs = store

	case config.BackendLocal:
		localStore, err = localfs.New(cfg.Storage.Local, cfg.Default.PublicURL)
		if err != nil {
			ExitOnError(err)
		}
		blobs = localStore
	}

	var publisher brokerRepository.Publisher = broker.NopPublisher{}
	if cfg.BrokerConfig.Enabled {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	writer := database.NewCityWriter(db)
	retriever := database.NewCityRetriever(db)
	lister := database.NewCityLister(db)
	updater := database.NewCityUpdater(db)
	remover := database.NewCityRemover(db)

	createHandler := handler.NewCreateHandler(usecase.NewCreator(writer, blobs, publisher), stager)
	listHandler := handler.NewListHandler(usecase.NewLister(lister, blobs))
	getHandler := handler.NewGetHandler(usecase.NewGetter(retriever, blobs))
	updateHandler := handler.NewUpdateHandler(usecase.NewUpdater(retriever, updater, blobs, publisher), stager)
	deleteHandler := handler.NewDeleteHandler(usecase.NewDeleter(retriever, remover, blobs, publisher))

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	// The upload cap is enforced in staging; this only keeps the whole
	// multipart body within reason.
	e.Use(echoMiddleware.BodyLimit("16M"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	cities := e.Group("/cities")
	cities.POST("", createHandler.Handle)
	cities.GET("", listHandler.Handle)
	cities.GET(fmt.Sprintf("/:%s", presentation.IDParam), getHandler.Handle)
	cities.PUT(fmt.Sprintf("/:%s", presentation.IDParam), updateHandler.Handle)
	cities.DELETE(fmt.Sprintf("/:%s", presentation.IDParam), deleteHandler.Handle)

	if localStore != nil {
		e.Static("/uploads", localStore.Directory())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := stager.Purge(); err != nil {
		logger.Error("couldn't purge staging directory", "err", err)
	}

	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
}
