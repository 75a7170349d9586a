package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Unmarshal(t *testing.T) {
	var body struct {
		Phone Field[string]   `json:"phone"`
		Logo  Field[string]   `json:"logo"`
		Codes Field[[]string] `json:"codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"0123","logo":null}`), &body))

	assert.True(t, body.Phone.Set)
	require.NotNil(t, body.Phone.Value)
	assert.Equal(t, "0123", *body.Phone.Value)

	assert.True(t, body.Logo.Set)
	assert.Nil(t, body.Logo.Value)

	assert.False(t, body.Codes.Set)
}

func TestField_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Field[int] `json:"a"`
		B Field[int] `json:"b"`
	}{A: Of(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(b))
}
