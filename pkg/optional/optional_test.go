package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Name  Option[string] `json:"name"`
	Email Option[string] `json:"email"`
}

func TestUnmarshal_DistinguishesAbsentFromEmpty(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name": ""}`), &p))

	name, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "", name)
	assert.False(t, p.Email.IsSet())
}

func TestUnmarshal_NullIsUnset(t *testing.T) {
	p := patch{Name: Some("before")}
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &p))
	assert.False(t, p.Name.IsSet())
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"name": 12}`), &p))
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, "x", None[string]().OrElse("x"))
	assert.Equal(t, "y", Some("y").OrElse("x"))
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(patch{Name: Some("bob")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"bob","email":null}`, string(out))
}
