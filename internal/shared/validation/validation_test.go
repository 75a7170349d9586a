package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string   `json:"email" validate:"required,email"`
	Slug  string   `json:"slug" validate:"omitempty,slug"`
	Date  string   `json:"preferred_start_date" validate:"omitempty,ymd"`
	Tags  []string `json:"tags" validate:"min=1,dive,oneof=a b"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{
			name: "valid",
			in:   sample{Email: "a@b.com", Slug: "deep-clean", Date: "2026-01-31", Tags: []string{"a"}},
		},
		{
			name:    "missing email",
			in:      sample{Tags: []string{"a"}},
			wantErr: "email: is required",
		},
		{
			name:    "bad slug",
			in:      sample{Email: "a@b.com", Slug: "Deep_Clean", Tags: []string{"a"}},
			wantErr: "slug: must be lowercase alphanumeric with hyphens",
		},
		{
			name:    "bad date",
			in:      sample{Email: "a@b.com", Date: "31/01/2026", Tags: []string{"a"}},
			wantErr: "preferred_start_date: must be a date in YYYY-MM-DD format",
		},
		{
			name:    "empty list",
			in:      sample{Email: "a@b.com", Tags: []string{}},
			wantErr: "tags: must contain at least 1 item(s)",
		},
		{
			name:    "enum member",
			in:      sample{Email: "a@b.com", Tags: []string{"c"}},
			wantErr: "tags[0]: must be one of [a b]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("primary_phone", "0123", "max=50"))
	assert.EqualError(t, Var("logo_url", "not a url", "url"), "logo_url: must be a valid URL")
}
