package classdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/topoc/api"
)

const categoryFixtureHeader = `
widget:
  DefineArgument:
    a: {}
    b: {}
  DefineAttribute:
    c: {}
    d: {}
    e: {}
`

func widgetMasks(t *testing.T, r *Registry) map[string]api.CategoryMask {
	t.Helper()
	class := r.Lookup("widget")
	require.NotNil(t, class)
	masks := make(map[string]api.CategoryMask, len(class.Attributes))
	for _, attr := range class.Attributes {
		masks[attr.Name] = attr.Constraint.Mask
	}
	return masks
}

func TestApplyCategories_KeywordListsSetOnlyTheirFlag(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    mandatory: [a, b]
    immutable: [c]
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.MaskMandatory, masks["a"])
	assert.Equal(t, api.MaskMandatory, masks["b"])
	assert.Equal(t, api.MaskImmutable, masks["c"])
	assert.Equal(t, api.CategoryMask(0), masks["d"])
	assert.Equal(t, api.CategoryMask(0), masks["e"])
}

func TestApplyCategories_UniqueWithoutPrecedingKeyword(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    unique: d
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.MaskUnique, masks["d"])
	for _, name := range []string{"a", "b", "c", "e"} {
		assert.Equal(t, api.CategoryMask(0), masks[name], "attribute %s", name)
	}
}

func TestApplyCategories_ListBeforeAnyKeywordIsSkipped(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    some_group: [a, b]
    mandatory: [c]
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.CategoryMask(0), masks["a"])
	assert.Equal(t, api.CategoryMask(0), masks["b"])
	assert.Equal(t, api.MaskMandatory, masks["c"])
}

func TestApplyCategories_ActiveCategoryFallsThrough(t *testing.T) {
	// A non-keyword list after a keyword inherits the active category, and
	// a unique entry in between does not reset it.
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    mandatory: [a]
    unique: d
    more: [b]
    deprecated: [e]
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.MaskMandatory, masks["a"])
	assert.Equal(t, api.MaskMandatory, masks["b"])
	assert.Equal(t, api.MaskUnique, masks["d"])
	assert.Equal(t, api.MaskDeprecated, masks["e"])
	assert.Equal(t, api.CategoryMask(0), masks["c"])
}

func TestApplyCategories_KeywordWithoutListIsStateSwitchOnly(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    automatic: marker
    group: [c]
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.MaskAutomatic, masks["c"])
	for _, name := range []string{"a", "b", "d", "e"} {
		assert.Equal(t, api.CategoryMask(0), masks[name], "attribute %s", name)
	}
}

func TestApplyCategories_FlagsAccumulate(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    mandatory: [a]
    immutable: [a]
    unique: a
`)

	masks := widgetMasks(t, r)
	assert.True(t, masks["a"].Has(api.MaskMandatory|api.MaskImmutable|api.MaskUnique))
	assert.False(t, masks["a"].Has(api.MaskDeprecated))
}

func TestApplyCategories_UnknownNamesSkipped(t *testing.T) {
	r := defineFixture(t, categoryFixtureHeader+`
  attributes:
    mandatory: [nosuch, a]
    unique: also_missing
`)

	masks := widgetMasks(t, r)
	assert.Equal(t, api.MaskMandatory, masks["a"])
}

func TestApplyCategories_NonStringListMemberRejected(t *testing.T) {
	_, err := tryDefine(t, categoryFixtureHeader+`
  attributes:
    mandatory: [5]
`)
	require.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), `"widget"`)
}

func TestApplyCategories_NonStringUniqueRejected(t *testing.T) {
	_, err := tryDefine(t, categoryFixtureHeader+`
  attributes:
    unique: 5
`)
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestApplyCategories_DuplicateNameFlagsFirstDeclaration(t *testing.T) {
	r := defineFixture(t, `
widget:
  DefineArgument:
    x: {}
  DefineAttribute:
    x: {}
  attributes:
    mandatory: [x]
`)

	class := r.Lookup("widget")
	require.NotNil(t, class)
	require.Len(t, class.Attributes, 2)
	assert.Equal(t, api.MaskMandatory, class.Attributes[0].Constraint.Mask)
	assert.Equal(t, api.CategoryMask(0), class.Attributes[1].Constraint.Mask)
}
