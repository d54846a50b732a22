package servicerecord

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHours_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   bool
		valid bool
		value float64
	}{
		{"json number", `2.5`, true, true, 2.5},
		{"numeric string", `"7.5"`, true, true, 7.5},
		{"integer string", `"3"`, true, true, 3},
		{"zero", `0`, true, true, 0},
		{"non-numeric string", `"two hours"`, true, false, 0},
		{"null is absent", `null`, false, false, 0},
		{"empty string is absent", `""`, false, false, 0},
		{"whitespace string is absent", `"   "`, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Hours
			require.NoError(t, json.Unmarshal([]byte(tt.input), &h))
			assert.Equal(t, tt.set, h.IsSet())
			assert.Equal(t, tt.valid, h.IsValid())
			assert.Equal(t, tt.value, h.Value())
		})
	}
}

func TestHours_UnmarshalJSON_ResetsPriorState(t *testing.T) {
	h := NewHours(2.5)
	require.NoError(t, json.Unmarshal([]byte(`"two and a half"`), &h))
	assert.True(t, h.IsSet())
	assert.False(t, h.IsValid())
	assert.Equal(t, 0.0, h.Value())
}

func TestHours_AbsentKeyIsNotSet(t *testing.T) {
	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"technician":"T"}`), &req))
	assert.False(t, req.ServiceTime.IsSet())
}

func TestHours_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewHours(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5", string(out))
}

func TestUpdateRequest_MarshalOmitsUnsetFields(t *testing.T) {
	tech := "New Tech"
	out, err := json.Marshal(UpdateRequest{Technician: &tech})
	require.NoError(t, err)
	assert.JSONEq(t, `{"technician":"New Tech"}`, string(out))

	// Round-tripping must not turn omission into an explicit clear.
	var decoded UpdateRequest
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.False(t, decoded.PartsUsed.Set)
	assert.False(t, decoded.ServiceTime.IsSet())
}

func TestOptionalString_UnmarshalJSON(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var req UpdateRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		assert.False(t, req.PartsUsed.Set)
	})

	t.Run("null", func(t *testing.T) {
		var req UpdateRequest
		require.NoError(t, json.Unmarshal([]byte(`{"partsUsed":null}`), &req))
		assert.True(t, req.PartsUsed.Set)
		assert.Nil(t, req.PartsUsed.Value)
	})

	t.Run("value", func(t *testing.T) {
		var req UpdateRequest
		require.NoError(t, json.Unmarshal([]byte(`{"partsUsed":"filters"}`), &req))
		assert.True(t, req.PartsUsed.Set)
		require.NotNil(t, req.PartsUsed.Value)
		assert.Equal(t, "filters", *req.PartsUsed.Value)
	})
}
