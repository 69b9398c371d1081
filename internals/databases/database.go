package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trabalhos_backend/internals/configs"
	materialModel "trabalhos_backend/internals/features/materials/model"
	submissionModel "trabalhos_backend/internals/features/submissions/model"
)

var DB *gorm.DB

func ConnectDB(cfg *configs.AppConfig) {
	log.Println("🔌 Conectando ao PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=trabalhos",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ DB conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate aplica o schema na inicialização. Idempotente: erro é logado
// e o processo continua (a tabela pode já existir).
func Migrate() {
	if err := DB.AutoMigrate(
		&submissionModel.SubmissionModel{},
		&materialModel.MaterialModel{},
	); err != nil {
		log.Printf("[DB] Erro ao aplicar migration: %v", err)
		return
	}
	log.Println("[DB] Migration aplicada com sucesso.")
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
