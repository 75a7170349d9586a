// Package dto はuploadフィーチャーのHTTPレスポンス型を定義します。
package dto

type UploadResponse struct {
	URL string `json:"url"`
}
