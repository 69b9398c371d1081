package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

/* =======================
   APP CONFIG
   ======================= */

// AppConfig é montado uma vez no startup e passado para controllers/middlewares.
// Nenhum estado global muda depois de LoadEnv.
type AppConfig struct {
	Port string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	// Auth (dois pares fixos de credenciais: aluno e admin)
	AdminUser   string
	AdminPass   string
	StudentUser string
	StudentPass string
	JWTSecret   string
	JWTExpires  time.Duration

	// Upload
	MaxUploadMB int
	UploadsDir  string

	// CORS
	CORSOrigin string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env não encontrado, usando ENV do sistema")
	}

	cfg := &AppConfig{
		Port: GetEnv("PORT", "4000"),

		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "trabalhos"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		AdminUser:   GetEnv("ADMIN_USER", "admin"),
		AdminPass:   GetEnv("ADMIN_PASS", "admin123"),
		StudentUser: GetEnv("STUDENT_USER", "aluno"),
		StudentPass: GetEnv("STUDENT_PASS", "123456"),
		JWTSecret:   GetEnv("JWT_SECRET", "CHANGE_ME_IN_PRODUCTION_supersecretkey"),
		JWTExpires:  parseDuration(GetEnv("JWT_EXPIRES_IN", "8h"), 8*time.Hour),

		MaxUploadMB: parseInt(GetEnv("MAX_UPLOAD_MB", "50"), 50),
		UploadsDir:  GetEnv("UPLOADS_DIR", "/app/uploads"),

		CORSOrigin: GetEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET não definido, usando default (NÃO use em produção)")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
