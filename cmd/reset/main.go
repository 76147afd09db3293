package main

import (
	"context"
	"log"
	"os"
	"time"

	clockadapters "kintai_backend/internal/feature/clock/adapters"
	platformdb "kintai_backend/internal/platform/db"
)

// reset はテスト環境向けの管理ツールです。打刻ログを一括削除し、
// デモユーザーを再登録します。通常運用では打刻は削除されません。
func main() {
	if os.Getenv("ALLOW_RESET") != "true" {
		log.Fatal("refusing to reset: set ALLOW_RESET=true to confirm")
	}

	db := platformdb.OpenDB()
	eventRepo := clockadapters.NewEventRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	// RESET_USERが指定されていればそのユーザーのみ、未指定なら全件削除
	if userID := os.Getenv("RESET_USER"); userID != "" {
		n, err := eventRepo.DeleteByUser(ctx, userID)
		if err != nil {
			log.Fatal("failed to delete user events:", err)
		}
		log.Printf("deleted %d events for user %s", n, userID)
	} else {
		n, err := eventRepo.DeleteAll(ctx)
		if err != nil {
			log.Fatal("failed to delete events:", err)
		}
		log.Printf("deleted %d events", n)
	}

	if err := platformdb.SeedDemoUsers(db); err != nil {
		log.Fatal("failed to seed demo users:", err)
	}
	log.Println("reset ok")
}
