package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanneat_backend/internal/feature/testimonials/domain/entity"
	"cleanneat_backend/internal/shared/audit"
	"cleanneat_backend/internal/shared/outcome"
)

type mockTestimonialRepository struct {
	CreateFunc        func(ctx context.Context, t *entity.Testimonial) error
	FindByIDFunc      func(ctx context.Context, id string) (*entity.Testimonial, error)
	ListFunc          func(ctx context.Context) ([]entity.Testimonial, error)
	ListPublishedFunc func(ctx context.Context) ([]entity.Testimonial, error)
	SaveFunc          func(ctx context.Context, t *entity.Testimonial) error
	DeleteFunc        func(ctx context.Context, id string) error
}

func (m *mockTestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTestimonialRepository) FindByID(ctx context.Context, id string) (*entity.Testimonial, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrTestimonialNotFound
}

func (m *mockTestimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialRepository) ListPublished(ctx context.Context) ([]entity.Testimonial, error) {
	if m.ListPublishedFunc != nil {
		return m.ListPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialRepository) Save(ctx context.Context, t *entity.Testimonial) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTestimonialRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Record(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

func newTestUsecase(repo TestimonialRepository) (*testimonialUsecase, *recordingAudit) {
	rec := &recordingAudit{}
	uc := NewTestimonialUsecase(repo, rec)
	uc.newID = func() (string, error) { return "abc123", nil }
	uc.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }
	return uc, rec
}

func TestTestimonialUsecase_Create(t *testing.T) {
	valid := CreateTestimonialInput{NamePublic: "Sam", LocationPublic: "Leeds", Rating: 5, Text: "Spotless"}

	t.Run("stored pending and unpublished", func(t *testing.T) {
		var stored *entity.Testimonial
		uc, rec := newTestUsecase(&mockTestimonialRepository{CreateFunc: func(_ context.Context, tm *entity.Testimonial) error {
			stored = tm
			return nil
		}})

		res := uc.Create(context.Background(), valid)

		id, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, "test_abc123", id)
		assert.Equal(t, entity.StatusPending, stored.Status)
		assert.False(t, stored.IsPublished)
		assert.Empty(t, rec.entries, "public submissions have no actor")
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newTestUsecase(&mockTestimonialRepository{})
		for _, in := range []CreateTestimonialInput{
			{NamePublic: "Sam", LocationPublic: "Leeds", Rating: 6, Text: "x"},
			{NamePublic: "Sam", LocationPublic: "Leeds", Rating: 0, Text: "x"},
			{NamePublic: "", LocationPublic: "Leeds", Rating: 3, Text: "x"},
			{NamePublic: "Sam", LocationPublic: "Leeds", Rating: 3, Text: strings.Repeat("x", 5001)},
		} {
			assert.Equal(t, outcome.KindInvalid, uc.Create(context.Background(), in).Kind())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		uc, _ := newTestUsecase(&mockTestimonialRepository{CreateFunc: func(context.Context, *entity.Testimonial) error {
			return errors.New("db down")
		}})
		assert.Equal(t, outcome.KindInternal, uc.Create(context.Background(), valid).Kind())
	})
}

func TestTestimonialUsecase_Update(t *testing.T) {
	published := true
	status := "approved"
	found := func(context.Context, string) (*entity.Testimonial, error) {
		return &entity.Testimonial{ID: "test_x", Status: entity.StatusPending}, nil
	}

	tests := []struct {
		name      string
		in        UpdateTestimonialInput
		find      func(context.Context, string) (*entity.Testimonial, error)
		wantKind  outcome.Kind
		wantMsg   string
		wantAudit bool
	}{
		{"publish", UpdateTestimonialInput{IsPublished: &published}, found, outcome.KindOK, "", true},
		{"status only", UpdateTestimonialInput{Status: &status}, found, outcome.KindOK, "", true},
		{"empty patch", UpdateTestimonialInput{}, found, outcome.KindInvalid, "At least one of is_published or status is required", false},
		{"missing", UpdateTestimonialInput{IsPublished: &published}, nil, outcome.KindNotFound, "Testimonial not found", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, rec := newTestUsecase(&mockTestimonialRepository{FindByIDFunc: tt.find})

			res := uc.Update(context.Background(), "actor", "test_x", tt.in)

			assert.Equal(t, tt.wantKind, res.Kind())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, res.Message())
			}
			if tt.wantAudit {
				require.Len(t, rec.entries, 1)
				assert.Equal(t, "update_testimonial", rec.entries[0].Action)
				assert.Contains(t, rec.entries[0].Details, "test_x")
			} else {
				assert.Empty(t, rec.entries)
			}
		})
	}
}

func TestTestimonialUsecase_Delete(t *testing.T) {
	uc, rec := newTestUsecase(&mockTestimonialRepository{})
	require.True(t, uc.Delete(context.Background(), "actor", "test_x").IsOK())
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "Deleted testimonial test_x", rec.entries[0].Details)

	uc, rec = newTestUsecase(&mockTestimonialRepository{DeleteFunc: func(context.Context, string) error { return ErrTestimonialNotFound }})
	assert.Equal(t, outcome.KindNotFound, uc.Delete(context.Background(), "actor", "test_x").Kind())
	assert.Empty(t, rec.entries)
}
