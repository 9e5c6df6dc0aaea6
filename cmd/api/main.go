package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/internal/infrastructure/memory"
	"github.com/mfigueroa/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/mfigueroa/ventas-api/internal/interfaces/http"
	"github.com/mfigueroa/ventas-api/pkg/config"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	metrics, err := httpRouter.NewMetrics(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	var (
		clienteUC  *usecase.ClienteUseCase
		productoUC *usecase.ProductoUseCase
		ventaUC    *usecase.VentaUseCase
		pool       *pgxpool.Pool
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		clienteUC = usecase.NewClienteUseCase(store.Clientes())
		productoUC = usecase.NewProductoUseCase(store.Productos())
		ventaUC = usecase.NewVentaUseCase(store, store.Ventas())
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
	default:
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			db := postgres.OpenDBFromPool(pool)
			if err := postgres.NewMigrator(db, log.Named("migrations")).Up(ctx); err != nil {
				log.Fatal().Err(err).Msg("aplicar migraciones")
			}
			_ = db.Close()
		}
		if err := httpRouter.RegisterCollector(prometheus.DefaultRegisterer, postgres.NewPoolCollector(pool)); err != nil {
			log.Error().Err(err).Msg("registrar collector del pool")
		}

		clienteRepo := postgres.NewClienteRepository(pool)
		productoRepo := postgres.NewProductoRepository(pool)
		ventaRepo := postgres.NewVentaRepository(pool)
		txRunner := postgres.NewTxRunner(pool)
		clienteUC = usecase.NewClienteUseCase(clienteRepo)
		productoUC = usecase.NewProductoUseCase(productoRepo)
		ventaUC = usecase.NewVentaUseCase(txRunner, ventaRepo)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true, // los valores de c.Query/c.Params se guardan en el store
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	if h := httpRouter.CORS(cfg.HTTP.CORSOrigins); h != nil {
		app.Use(h)
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.FilePath,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if pool != nil {
			if err := pool.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:  clienteUC,
		ProductoUC: productoUC,
		VentaUC:    ventaUC,
		Log:        log,
		Metrics:    metrics,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
