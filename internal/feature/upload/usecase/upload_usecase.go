// Package usecase はuploadフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"cleanneat_backend/internal/feature/upload/domain/entity"
	"cleanneat_backend/internal/shared/outcome"
)

var ErrFileNotFound = errors.New("file not found")

// FileStore はアップロードファイルの保存先を抽象化します。
type FileStore interface {
	Put(ctx context.Context, name string, data []byte) error
	// Stat は保存済みファイルのパスを返します。存在しなければ ErrFileNotFound。
	Stat(ctx context.Context, name string) (string, error)
}

// allowed は検出したMIMEタイプと保存時の拡張子の対応です。
var allowed = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
}

// byExtension は配信時の Content-Type です。
var byExtension = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

type uploadUsecase struct {
	store FileStore
	newID func() (string, error)
}

func NewUploadUsecase(store FileStore) *uploadUsecase {
	return &uploadUsecase{
		store: store,
		newID: func() (string, error) { return gonanoid.New() },
	}
}

// Upload は内容（マジックバイト）で種別を判定し、安全な名前で保存します。
// 拡張子や申告された Content-Type は信用しません。
func (u *uploadUsecase) Upload(ctx context.Context, data []byte) outcome.Result[string] {
	if len(data) > entity.MaxSizeBytes {
		return outcome.TooLarge[string]("File must not exceed 20MB")
	}
	if len(data) == 0 {
		return outcome.Invalid[string]("File is empty")
	}

	mt := mimetype.Detect(data)
	ext := ""
	for mime, e := range allowed {
		// Is はエイリアスも一致とみなす
		if mt.Is(mime) {
			ext = e
			break
		}
	}
	if ext == "" {
		slog.Warn("upload rejected: disallowed file type", "mime", mt.String(), "bytes", len(data))
		return outcome.Invalid[string]("Only PDF and image files (JPEG, PNG, GIF, WebP) are allowed")
	}

	id, err := u.newID()
	if err != nil {
		slog.Error("failed to generate upload name", "error", err)
		return outcome.Internal[string]()
	}
	name := id + "." + ext
	if err := u.store.Put(ctx, name, data); err != nil {
		slog.Error("failed to write upload", "error", err, "filename", name)
		return outcome.Internal[string]()
	}
	slog.Info("file uploaded", "filename", name, "mime", mt.String(), "size", len(data))
	return outcome.OK(name)
}

// Locate は配信する保存済みファイルを探します。
func (u *uploadUsecase) Locate(ctx context.Context, name string) outcome.Result[entity.StoredFile] {
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return outcome.Invalid[entity.StoredFile]("Invalid filename")
	}
	path, err := u.store.Stat(ctx, name)
	if errors.Is(err, ErrFileNotFound) {
		return outcome.NotFound[entity.StoredFile]("Not found")
	}
	if err != nil {
		slog.Error("failed to stat upload", "error", err, "filename", name)
		return outcome.Internal[entity.StoredFile]()
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	contentType, ok := byExtension[ext]
	if !ok {
		contentType = "application/octet-stream"
	}
	return outcome.OK(entity.StoredFile{Name: name, Path: path, ContentType: contentType})
}
