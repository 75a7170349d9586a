// Package handler はuploadフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cleanneat_backend/internal/feature/upload/domain/entity"
	"cleanneat_backend/internal/feature/upload/transport/http/dto"
	"cleanneat_backend/internal/platform/http/respond"
	"cleanneat_backend/internal/shared/outcome"
)

// multipart のヘッダー分の余裕
const formOverhead = 1 << 20

// UploadUsecase はアップロードのユースケースインターフェースを定義します。
type UploadUsecase interface {
	Upload(ctx context.Context, data []byte) outcome.Result[string]
	Locate(ctx context.Context, name string) outcome.Result[entity.StoredFile]
}

type UploadHandler struct {
	uc        UploadUsecase
	publicURL string
}

// NewUploadHandler は publicURL が空の場合、リクエストのホストからURLを組み立てます。
func NewUploadHandler(uc UploadUsecase, publicURL string) *UploadHandler {
	return &UploadHandler{uc: uc, publicURL: strings.TrimSuffix(publicURL, "/")}
}

// Upload はファイルを保存して公開URLを返します。
//
// エンドポイント: POST /api/v1/upload
// Content-Type: multipart/form-data
// フィールド: file（PDFまたは画像、最大20MB）
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, entity.MaxSizeBytes+formOverhead)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Problem(c, outcome.Problem{Kind: outcome.KindTooLarge, Message: "File must not exceed 20MB"})
			return
		}
		slog.Warn("upload without file", "error", err, "remote_addr", c.ClientIP())
		respond.Problem(c, outcome.Problem{Kind: outcome.KindInvalid, Message: "No file uploaded. Send a multipart form with a file field."})
		return
	}
	if file.Size > entity.MaxSizeBytes {
		respond.Problem(c, outcome.Problem{Kind: outcome.KindTooLarge, Message: "File must not exceed 20MB"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		respond.Problem(c, outcome.Problem{Kind: outcome.KindInternal})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(f, entity.MaxSizeBytes+1))
	if err != nil {
		slog.Error("failed to read uploaded file", "error", err)
		respond.Problem(c, outcome.Problem{Kind: outcome.KindInternal})
		return
	}

	base := h.baseURL(c)
	respond.Result(c, h.uc.Upload(c.Request.Context(), data), http.StatusCreated, func(name string) any {
		return dto.UploadResponse{URL: base + "/uploads/" + name}
	})
}

// Serve は認証済みユーザーにのみ保存済みファイルを返します。
//
// エンドポイント: GET /uploads/:filename（/api/v1 の外）
func (h *UploadHandler) Serve(c *gin.Context) {
	res := h.uc.Locate(c.Request.Context(), c.Param("filename"))
	stored, ok := res.Value()
	if !ok {
		respond.Problem(c, res.Problem())
		return
	}
	c.Header("Content-Type", stored.ContentType)
	c.File(stored.Path)
}

func (h *UploadHandler) baseURL(c *gin.Context) string {
	if h.publicURL != "" {
		return h.publicURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if p := c.GetHeader("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + c.Request.Host
}
