// Package usecase はservicesフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrServiceNotFound is returned when no service has the given id or slug.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlugTaken is returned by the store when the slug unique index rejects a write.
	ErrSlugTaken = errors.New("slug already taken")
)
