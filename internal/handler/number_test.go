package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	type payload struct {
		Weight *Number `json:"weight"`
	}

	cases := []struct {
		name    string
		body    string
		want    float64
		missing bool
	}{
		{name: "json number", body: `{"weight": 120.5}`, want: 120.5},
		{name: "zero", body: `{"weight": 0}`, want: 0},
		{name: "numeric string", body: `{"weight": "120.5"}`, want: 120.5},
		{name: "padded string", body: `{"weight": " 42 "}`, want: 42},
		{name: "unparseable string", body: `{"weight": "heavy"}`, want: 0},
		{name: "empty string", body: `{"weight": ""}`, missing: true},
		{name: "whitespace string", body: `{"weight": "  "}`, missing: true},
		{name: "null", body: `{"weight": null}`, missing: true},
		{name: "absent", body: `{}`, missing: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))

			if tc.missing {
				assert.True(t, p.Weight.Missing())
				assert.Equal(t, 0.0, p.Weight.Float())
				assert.Nil(t, p.Weight.FloatPtr())
				return
			}
			require.False(t, p.Weight.Missing())
			assert.Equal(t, tc.want, p.Weight.Float())
			require.NotNil(t, p.Weight.FloatPtr())
			assert.Equal(t, tc.want, *p.Weight.FloatPtr())
		})
	}
}

func TestNumberUnmarshalRejectsNonNumericJSON(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}
