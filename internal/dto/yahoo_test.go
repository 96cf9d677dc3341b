package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
	}{
		{name: "bare number", input: `12.5`, wantValid: true, wantValue: 12.5},
		{name: "null", input: `null`},
		{name: "empty object", input: `{}`},
		{name: "raw object", input: `{"raw": 3000000000, "fmt": "3B"}`, wantValid: true, wantValue: 3e9},
		{name: "numeric string", input: `"1.25"`, wantValid: true, wantValue: 1.25},
		{name: "garbage string", input: `"n/a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				V OptionalFloat `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"v":`+tt.input+`}`), &got))
			assert.Equal(t, tt.wantValid, got.V.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, got.V.Value)
				require.NotNil(t, got.V.Ptr())
				assert.Equal(t, tt.wantValue, *got.V.Ptr())
			} else {
				assert.Nil(t, got.V.Ptr())
			}
		})
	}
}

func TestOptionalFloat_Absent(t *testing.T) {
	var q YahooQuote
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":"AAPL"}`), &q))
	assert.False(t, q.MarketCap.Valid)
}

func TestImageResultResponse_Sample(t *testing.T) {
	var r ImageResultResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","status":"Ready","result":{"sample":"https://img/x.jpg"}}`), &r))
	assert.Equal(t, "https://img/x.jpg", r.Sample())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","status":"Error","result":"boom"}`), &r))
	assert.Equal(t, "", r.Sample())

	var empty *ImageResultResponse
	assert.Equal(t, "", empty.Sample())
}
