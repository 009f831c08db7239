package codec_test

import (
	"testing"

	"github.com/npillmayer/selkit/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestObjectOrder(t *testing.T) {
	o := codec.NewObject().Set("z", 1).Set("a", 2).Set("z", 3)
	assert.Equal(t, []string{"z", "a"}, o.Keys())
	assert.Equal(t, 2, o.Len())
	v, ok := o.Get("z")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestObjectJSON(t *testing.T) {
	text := `{"z":{"y":1,"b":[true,{"k":null}]},"a":"s"}`
	o, err := codec.Decode[*codec.Object](text)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, []string{"z", "a"}, o.Keys())
	z, _ := o.Get("z")
	require.IsType(t, &codec.Object{}, z)
	assert.Equal(t, []string{"y", "b"}, z.(*codec.Object).Keys())
	back, err := codec.Encode(o)
	require.NoError(t, err)
	assert.Equal(t, text, back)
}

func TestObjectYAML(t *testing.T) {
	o := codec.NewObject().Set("width", 10).Set("area", codec.NewObject().Set("unit", "pt"))
	out, err := yaml.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, "width: 10\narea:\n    unit: pt\n", string(out))
	//
	text, err := codec.YAML.Encode(o)
	require.NoError(t, err)
	back, err := codec.DecodeFormat[*codec.Object](codec.YAML, text)
	require.NoError(t, err)
	assert.Equal(t, []string{"width", "area"}, back.Keys())
}
