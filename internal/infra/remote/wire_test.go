package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	cases := map[string]float64{
		`0.05`:           0.05,
		`"0.05"`:         0.05,
		`" 12 "`:         12,
		`"not-a-number"`: 0,
		`""`:             0,
		`null`:           0,
		`true`:           1,
		`false`:          0,
		`{"nested":1}`:   0,
		`"1e3"`:          1000,
		`"NaN"`:          0,
		`"Infinity"`:     0,
		`"-inf"`:         0,
		`"+Inf"`:         0,
		`"1e400"`:        0,
	}
	for in, want := range cases {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(in), &n), in)
		assert.Equal(t, want, n.Float(), in)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`1`:       true,
		`0`:       false,
		`2`:       true,
		`"1"`:     true,
		`"0"`:     false,
		`"true"`:  true,
		`"FALSE"`: false,
		`""`:      false,
		`"yes"`:   true,
		`null`:    false,
	}
	for in, want := range cases {
		var b Bool
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		assert.Equal(t, want, bool(b), in)
	}
}

func TestStringList(t *testing.T) {
	cases := map[string][]string{
		`"[\"a\",\"b\"]"`: {"a", "b"},
		`["a","b"]`:       {"a", "b"},
		`[1,2]`:           {"1", "2"},
		`"[1, 2]"`:        {"1", "2"},
		`"not json"`:      {},
		`"{}"`:            {},
		`""`:              {},
		`null`:            {},
		`42`:              {},
	}
	for in, want := range cases {
		var l StringList
		require.NoError(t, json.Unmarshal([]byte(in), &l), in)
		assert.Equal(t, want, l.Strings(), in)
	}
}

func TestStringList_MarshalsAsJSONString(t *testing.T) {
	b, err := json.Marshal(StringList{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `"[\"a\",\"b\"]"`, string(b))

	b, err = json.Marshal(StringList(nil))
	require.NoError(t, err)
	assert.Equal(t, `"[]"`, string(b))
}

func TestText(t *testing.T) {
	var v struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":17,"c":null}`), &v))
	assert.Equal(t, Text("x"), v.A)
	assert.Equal(t, Text("17"), v.B)
	assert.Equal(t, Text(""), v.C)
}

func TestTime(t *testing.T) {
	var v struct {
		A Time `json:"a"`
		B Time `json:"b"`
		C Time `json:"c"`
		D Time `json:"d"`
		E Time `json:"e"`
	}
	raw := `{"a":"2025-03-01 10:15:00","b":"2025-03-01T10:15:00Z","c":"2025-03-01","d":"0000-00-00 00:00:00","e":"garbage"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &v))

	require.NotNil(t, v.A.Ptr())
	assert.Equal(t, 10, v.A.Ptr().Hour())
	require.NotNil(t, v.B.Ptr())
	require.NotNil(t, v.C.Ptr())
	assert.Nil(t, v.D.Ptr())
	assert.Nil(t, v.E.Ptr())

	b, err := json.Marshal(v.A)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01 10:15:00"`, string(b))
}

func TestBoolMarshalsAsInt(t *testing.T) {
	b, err := json.Marshal(struct {
		On  Bool `json:"on"`
		Off Bool `json:"off"`
	}{On: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":1,"off":0}`, string(b))
}

func TestWireRecordToViewModel(t *testing.T) {
	var a agentWire
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"first_name":"Ann","commission_rate":"0.05","is_active":1}`), &a))
	agent := toAgent(a)
	assert.Equal(t, 0.05, agent.CommissionRate)
	assert.True(t, agent.IsActive)
	assert.Equal(t, "3", agent.ID)

	var p productWire
	require.NoError(t, json.Unmarshal([]byte(`{"features":"[\"a\",\"b\"]","is_active":1,"price":"99.5"}`), &p))
	product := toProduct(p)
	assert.Equal(t, []string{"a", "b"}, product.Features)
	assert.True(t, product.IsActive)
	assert.Equal(t, 99.5, product.Price)

	var bad agentWire
	require.NoError(t, json.Unmarshal([]byte(`{"commission_rate":"not-a-number"}`), &bad))
	assert.Equal(t, 0.0, toAgent(bad).CommissionRate)
}
