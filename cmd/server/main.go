package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"fitness_backend/internal/app/di"
	"fitness_backend/internal/app/router"
	authadapters "fitness_backend/internal/feature/auth/adapters"
	authhandler "fitness_backend/internal/feature/auth/transport/handler"
	authusecase "fitness_backend/internal/feature/auth/usecase"
	recordhandler "fitness_backend/internal/feature/records/transport/handler"
	recordsusecase "fitness_backend/internal/feature/records/usecase"
	infradb "fitness_backend/internal/platform/db"
	jwtmw "fitness_backend/internal/platform/jwt"
	infraredis "fitness_backend/internal/platform/redis"
)

func main() {
	// .env があれば読み込む（本番は環境変数で直接渡す）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// db
	db := infradb.OpenDB()

	// Redis（任意。落ちていてもキャッシュなしで動作する）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（未設定なら保護ルートは一切通らない）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// トークン有効期限は方針として設定可能にする。
	// 未設定（または0）なら従来どおり無期限トークンを発行する。
	var tokenTTL time.Duration
	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid JWT_TTL %q: %v", v, err)
		}
		tokenTTL = ttl
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	recordRepo := di.NewRecordRepository(rdb, db, 0)

	// Usecase
	tokenGen := jwtmw.NewGenerator(secret, tokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	recordsUC := recordsusecase.NewRecordsUsecase(recordRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, recordsUC)
	recordH := recordhandler.NewRecordHandler(recordsUC)

	// ルータ生成
	r := router.NewRouter(authH, recordH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
