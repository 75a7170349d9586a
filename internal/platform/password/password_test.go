package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	inputs := []string{
		"Secret123!",
		"パスワード🔒ünïcødé",
		strings.Repeat("x", MaxLength),
		"",
	}
	for _, in := range inputs {
		digest, err := h.Hash(in)
		require.NoError(t, err)
		assert.NotEqual(t, in, digest)
		assert.True(t, h.Verify(in, digest), "verify %q", in)
		assert.False(t, h.Verify(in+"x", digest), "other plaintext must not match")
	}
}

func TestHasher_RejectsTooLong(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", MaxLength+1))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestHasher_VerifyRejectsSuffixBeyondMaxLength(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	stored := "Aa1!" + strings.Repeat("x", MaxLength-4)
	require.NoError(t, CheckStrength(stored))

	digest, err := h.Hash(stored)
	require.NoError(t, err)

	assert.True(t, h.Verify(stored, digest))
	assert.False(t, h.Verify(stored+"garbage", digest))
}

func TestHasher_MalformedDigestIsMismatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestHasher_DummyHashIsValidBcrypt(t *testing.T) {
	_, err := bcrypt.Cost([]byte(DummyHash))
	assert.NoError(t, err)
}

func TestNewHasher_CostFallback(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).cost)
}

func TestGenerate(t *testing.T) {
	p, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, p, 16)
	for _, r := range p {
		assert.Contains(t, safeAlphabet, string(r))
	}

	q, err := Generate(16)
	require.NoError(t, err)
	assert.NotEqual(t, p, q)
}

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"Str0ng!Passw0rd", ""},
		{"Sh0rt!", "password must be at least 12 characters long"},
		{"NOLOWERCASE123!", "password must contain at least one lowercase letter"},
		{"nouppercase123!", "password must contain at least one uppercase letter"},
		{"NoDigitsHere!!", "password must contain at least one number"},
		{"NoSpecial12345", "password must contain at least one special character"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := CheckStrength(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
