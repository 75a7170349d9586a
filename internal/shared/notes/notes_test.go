package notes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	orig := []Note{{Text: "first", WriterName: "Ann", WrittenAt: at}}

	got := Append(orig, "second", "", at)

	require.Len(t, got, 2)
	assert.Len(t, orig, 1, "input must not be modified")
	assert.Equal(t, UnknownWriter, got[1].WriterName)
	assert.Equal(t, "second", got[1].Text)
}

func TestRemove(t *testing.T) {
	list := []Note{{Text: "a"}, {Text: "b"}, {Text: "c"}}

	tests := []struct {
		name   string
		index  int
		want   []string
		wantOK bool
	}{
		{"first", 0, []string{"b", "c"}, true},
		{"middle", 1, []string{"a", "c"}, true},
		{"last", 2, []string{"a", "b"}, true},
		{"negative", -1, nil, false},
		{"out of range", 3, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Remove(list, tt.index)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			texts := make([]string, 0, len(got))
			for _, n := range got {
				texts = append(texts, n.Text)
			}
			assert.Equal(t, tt.want, texts)
			assert.Len(t, list, 3, "input must not be modified")
		})
	}
}
