package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanneat_backend/internal/feature/upload/domain/entity"
	"cleanneat_backend/internal/shared/outcome"
)

type memoryStore struct {
	files  map[string][]byte
	putErr error
}

func (m *memoryStore) Put(_ context.Context, name string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.files[name] = data
	return nil
}

func (m *memoryStore) Stat(_ context.Context, name string) (string, error) {
	if _, ok := m.files[name]; !ok {
		return "", ErrFileNotFound
	}
	return "/srv/uploads/" + name, nil
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	pdfHeader  = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!")
	webpHeader = []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00")
)

func newTestUsecase(store *memoryStore) *uploadUsecase {
	uc := NewUploadUsecase(store)
	uc.newID = func() (string, error) { return "V1StGXR8", nil }
	return uc
}

func TestUploadUsecase_Upload(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantKind outcome.Kind
		wantName string
	}{
		{"png", pngHeader, outcome.KindOK, "V1StGXR8.png"},
		{"pdf", pdfHeader, outcome.KindOK, "V1StGXR8.pdf"},
		{"jpeg", jpegHeader, outcome.KindOK, "V1StGXR8.jpg"},
		{"gif", gifHeader, outcome.KindOK, "V1StGXR8.gif"},
		{"webp", webpHeader, outcome.KindOK, "V1StGXR8.webp"},
		{"empty", nil, outcome.KindInvalid, ""},
		{"plain text", []byte("hello, this is not an image"), outcome.KindInvalid, ""},
		{"zip disguised", []byte("PK\x03\x04\x14\x00\x00\x00\x08\x00"), outcome.KindInvalid, ""},
		{"too large", bytes.Repeat([]byte{0}, entity.MaxSizeBytes+1), outcome.KindTooLarge, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{files: map[string][]byte{}}

			res := newTestUsecase(store).Upload(context.Background(), tt.data)

			require.Equal(t, tt.wantKind, res.Kind(), res.Message())
			if tt.wantKind != outcome.KindOK {
				assert.Empty(t, store.files)
				return
			}
			name, _ := res.Value()
			assert.Equal(t, tt.wantName, name)
			assert.Contains(t, store.files, name)
		})
	}
}

func TestUploadUsecase_UploadStoreFailure(t *testing.T) {
	store := &memoryStore{files: map[string][]byte{}, putErr: errors.New("disk full")}

	res := newTestUsecase(store).Upload(context.Background(), pngHeader)

	assert.Equal(t, outcome.KindInternal, res.Kind())
}

func TestUploadUsecase_Locate(t *testing.T) {
	store := &memoryStore{files: map[string][]byte{"a.webp": nil, "b.bin": nil}}
	uc := newTestUsecase(store)

	tests := []struct {
		name            string
		filename        string
		wantKind        outcome.Kind
		wantContentType string
	}{
		{"served", "a.webp", outcome.KindOK, "image/webp"},
		{"unknown extension", "b.bin", outcome.KindOK, "application/octet-stream"},
		{"missing", "c.png", outcome.KindNotFound, ""},
		{"dot dot", "..", outcome.KindInvalid, ""},
		{"traversal", "..%2f" + strings.Repeat("x", 3), outcome.KindInvalid, ""},
		{"backslash", `a\b.png`, outcome.KindInvalid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := uc.Locate(context.Background(), tt.filename)

			require.Equal(t, tt.wantKind, res.Kind())
			if f, ok := res.Value(); ok {
				assert.Equal(t, tt.wantContentType, f.ContentType)
				assert.Equal(t, "/srv/uploads/"+tt.filename, f.Path)
			}
		})
	}
}
