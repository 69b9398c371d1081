// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"trabalhos_backend/internals/configs"
	database "trabalhos_backend/internals/databases"
	helper "trabalhos_backend/internals/helpers"
	"trabalhos_backend/internals/helpers/storage"
	"trabalhos_backend/internals/middlewares"
	"trabalhos_backend/internals/route"
)

func main() {
	cfg := configs.LoadEnv()

	database.ConnectDB(cfg)
	database.TunePool()
	database.Migrate()

	st := storage.New(cfg.UploadsDir, cfg.MaxUploadMB)
	if err := st.EnsureBaseDir(); err != nil {
		log.Fatalf("[STORAGE ERROR] %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "Trabalhos Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// 1MB de folga sobre o limite de arquivo (campos do multipart)
		BodyLimit:    (cfg.MaxUploadMB + 1) * 1024 * 1024,
		ErrorHandler: helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Banco de dados indisponível.")
		}
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	route.SetupRoutes(app, database.DB, st, cfg)

	// shutdown gracioso
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("[SHUTDOWN] Encerrando servidor...")
		_ = app.Shutdown()
	}()

	log.Printf("[BOOT] Servidor ouvindo na porta %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("[BOOT ERROR] %v", err)
	}
}
