// Package router はアプリケーションのルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "kintai_backend/internal/feature/auth/transport/handler"
	clockhandler "kintai_backend/internal/feature/clock/transport/handler"
	"kintai_backend/internal/platform/http/handler"
	jwtmw "kintai_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, clock *clockhandler.ClockHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.POST("/clock-in", clock.ClockIn)
		auth.POST("/clock-out", clock.ClockOut)
		auth.GET("/records", clock.GetRecords)
		auth.GET("/records/daily", clock.GetDailyRecords)
		auth.GET("/status", clock.GetStatus)
	}

	return r
}
