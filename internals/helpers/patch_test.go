package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Name  UpdateField[string]  `json:"name"`
	Score UpdateField[float64] `json:"score"`
}

func TestUpdateField_Ausente(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))

	assert.False(t, body.Name.ShouldUpdate())
	assert.False(t, body.Score.ShouldUpdate())
}

func TestUpdateField_Null(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &body))

	assert.True(t, body.Name.ShouldUpdate())
	assert.True(t, body.Name.IsNull())
	assert.Equal(t, "", body.Name.Val())
	assert.False(t, body.Score.ShouldUpdate())
}

func TestUpdateField_Valor(t *testing.T) {
	var body patchBody
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ana", "score": 4.5}`), &body))

	assert.True(t, body.Name.ShouldUpdate())
	assert.False(t, body.Name.IsNull())
	assert.Equal(t, "Ana", body.Name.Val())

	assert.True(t, body.Score.ShouldUpdate())
	assert.Equal(t, 4.5, body.Score.Val())
}

func TestTrimPtr(t *testing.T) {
	assert.Nil(t, TrimPtr(nil))

	empty := "   "
	assert.Nil(t, TrimPtr(&empty))

	v := "  hola  "
	got := TrimPtr(&v)
	require.NotNil(t, got)
	assert.Equal(t, "hola", *got)
}
