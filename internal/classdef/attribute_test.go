package classdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/topoc/api"
)

func TestParseAttributes_ArgumentCount(t *testing.T) {
	r := defineFixture(t, `
dai:
  DefineArgument:
    type: {}
    dai_index: {}
    direction: {}
  DefineAttribute:
    format: {}
    rate: {}
`)

	class := r.Lookup("dai")
	require.NotNil(t, class)
	assert.Equal(t, 3, class.NumArgs)
	assert.Len(t, class.Attributes, 5)
}

func TestParseAttributes_DeclarationOrderAcrossSections(t *testing.T) {
	r := defineFixture(t, `
widget:
  DefineArgument:
    instance: {}
  DefineAttribute:
    format: {}
  DefineArgument:
    index: {}
`)

	class := r.Lookup("widget")
	require.NotNil(t, class)
	require.Len(t, class.Attributes, 3)
	assert.Equal(t, "instance", class.Attributes[0].Name)
	assert.Equal(t, "format", class.Attributes[1].Name)
	assert.Equal(t, "index", class.Attributes[2].Name)

	assert.Equal(t, api.KindArgument, class.Attributes[0].Kind)
	assert.Equal(t, api.KindAttribute, class.Attributes[1].Kind)
	assert.Equal(t, api.KindArgument, class.Attributes[2].Kind)
	assert.Equal(t, 2, class.NumArgs)
}

func TestParseAttributes_DefaultConstraintBounds(t *testing.T) {
	r := defineFixture(t, `
buffer:
  DefineAttribute:
    size: {}
`)

	attr := r.Lookup("buffer").Attribute("size")
	require.NotNil(t, attr)
	assert.Equal(t, int64(api.MinValue), attr.Constraint.Min)
	assert.Equal(t, int64(api.MaxValue), attr.Constraint.Max)
	assert.Equal(t, api.CategoryMask(0), attr.Constraint.Mask)
}

func TestParseAttributes_TokenRefStoredVerbatim(t *testing.T) {
	r := defineFixture(t, `
dai:
  DefineAttribute:
    word_length:
      token_ref: sof_tkn_dai.word
`)

	attr := r.Lookup("dai").Attribute("word_length")
	require.NotNil(t, attr)
	assert.Equal(t, "sof_tkn_dai.word", attr.TokenRef)
}

func TestParseAttributes_NonStringTokenRef(t *testing.T) {
	_, err := tryDefine(t, `
dai:
  DefineAttribute:
    word_length:
      token_ref: 12
`)
	require.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), `"word_length"`)
}

func TestParseAttributes_NamelessEntriesSkipped(t *testing.T) {
	r := defineFixture(t, `
pga:
  DefineAttribute:
    7: {}
    ramp: {}
`)

	class := r.Lookup("pga")
	require.NotNil(t, class)
	require.Len(t, class.Attributes, 1)
	assert.Equal(t, "ramp", class.Attributes[0].Name)
}

func TestParseAttributes_DuplicateNameFirstDeclaredWins(t *testing.T) {
	r := defineFixture(t, `
pga:
  DefineArgument:
    direction: {}
  DefineAttribute:
    direction: {}
`)

	attr := r.Lookup("pga").Attribute("direction")
	require.NotNil(t, attr)
	assert.Equal(t, api.KindArgument, attr.Kind)
}

func TestParseAttributes_UnknownKeysIgnored(t *testing.T) {
	r := defineFixture(t, `
pga:
  DefineAttribute:
    ramp:
      comment: step or linear
      token_ref: sof_tkn_volume.word
`)

	attr := r.Lookup("pga").Attribute("ramp")
	require.NotNil(t, attr)
	assert.Equal(t, "sof_tkn_volume.word", attr.TokenRef)
}
