package jsonvalidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonRootLevelKeyCount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "flat object", body: `{"income": 1, "status": "TK/0", "method": "gross"}`, want: 3},
		{name: "nested values are not counted", body: `{"a": {"b": 1, "c": [1, {"d": 2}]}, "e": []}`, want: 2},
		{name: "empty object", body: `{}`, want: 0},
		{name: "array", body: `[1, 2]`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JsonRootLevelKeyCount(tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckJSONOrder(t *testing.T) {
	expected := []string{"income", "status", "method"}

	assert.NoError(t, CheckJSONOrder([]byte(`{"income": 1, "status": "K/0", "method": "gross"}`), expected))
	assert.Error(t, CheckJSONOrder([]byte(`{"status": "K/0", "income": 1, "method": "gross"}`), expected))
	assert.Error(t, CheckJSONOrder([]byte(`{"income": 1, "status": "K/0"}`), expected))
}

func TestRootKeysOrder(t *testing.T) {
	keys, err := RootKeys([]byte(`{"z": 1, "a": {"x": true}, "m": null}`))

	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}
