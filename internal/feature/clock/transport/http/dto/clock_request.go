// Package dto は打刻フィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ClockReq は/clock-inおよび/clock-outエンドポイントのリクエストボディを表します。
// いずれのフィールドも省略可能で、ボディ自体を省略することもできます。
type ClockReq struct {
	Location string `json:"location"`
	DeviceID string `json:"deviceId"`
}
