// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "kintai_backend/internal/feature/auth/domain/entity"
	clockadapters "kintai_backend/internal/feature/clock/adapters"
)

// OpenDB は環境変数の接続情報でPostgreSQLへ接続し、gorm.DBを返します。
// 起動直後のデータベース未準備に備えて最大60秒リトライします。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateErrorでユニーク制約違反をgorm.ErrDuplicatedKeyに変換する
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, ClockEvent）
		if err := db.AutoMigrate(
			&authentity.User{},
			&clockadapters.ClockEventModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	if os.Getenv("SEED_DEMO_USERS") == "true" {
		if err := SeedDemoUsers(db); err != nil {
			log.Fatalf("failed to seed demo users: %v", err)
		}
	}

	return db
}

// demoUsers はテスト環境用の固定アカウントです。
var demoUsers = []struct {
	loginID  string
	name     string
	password string
}{
	{"user001", "山田 太郎", "password123"},
	{"user002", "佐藤 花子", "password456"},
}

// SeedDemoUsers はテスト環境用の固定ユーザーを登録します。
// 既に存在するログインIDはそのまま残します（冪等）。
func SeedDemoUsers(db *gorm.DB) error {
	for _, u := range demoUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		user := authentity.User{LoginID: u.loginID, Name: u.name, Password: string(hashed)}
		if err := db.Where("login_id = ?", u.loginID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.loginID, err)
		}
	}
	return nil
}
