package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"kintai_backend/internal/app/di"
	"kintai_backend/internal/app/router"
	authadapters "kintai_backend/internal/feature/auth/adapters"
	authhandler "kintai_backend/internal/feature/auth/transport/handler"
	authusecase "kintai_backend/internal/feature/auth/usecase"
	clockhandler "kintai_backend/internal/feature/clock/transport/handler"
	clockusecase "kintai_backend/internal/feature/clock/usecase"
	platformdb "kintai_backend/internal/platform/db"
	jwtmw "kintai_backend/internal/platform/jwt"
	platformredis "kintai_backend/internal/platform/redis"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
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

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	eventRepo := di.NewEventRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, 8*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	recordUC := clockusecase.NewRecordUsecase(eventRepo, nil)
	historyUC := clockusecase.NewHistoryUsecase(eventRepo, nil)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	clockH := clockhandler.NewClockHandler(recordUC, historyUC)

	// ルータ生成
	router := router.NewRouter(authH, clockH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
