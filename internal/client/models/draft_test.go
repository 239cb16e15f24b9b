package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_CategoryChangeClearsSubcategory(t *testing.T) {
	d := Draft{Category: CategoryOther, Subcategory: "sąsiad"}

	require.NoError(t, d.SetField(FieldCategory, string(CategoryBusiness)))
	assert.Equal(t, CategoryBusiness, d.Category)
	assert.Empty(t, d.Subcategory)
}

func TestDraft_SameCategoryKeepsSubcategory(t *testing.T) {
	d := Draft{Category: CategoryOther, Subcategory: "sąsiad"}

	require.NoError(t, d.SetField(FieldCategory, string(CategoryOther)))
	assert.Equal(t, "sąsiad", d.Subcategory)
}

func TestDraft_BusinessSubcategoryRestrictedToOptions(t *testing.T) {
	d := Draft{Category: CategoryBusiness}

	for _, opt := range BusinessSubcategories {
		require.NoError(t, d.SetField(FieldSubcategory, opt))
		assert.Equal(t, opt, d.Subcategory)
	}

	err := d.SetField(FieldSubcategory, "Kolega")
	require.ErrorIs(t, err, ErrOptionNotOffered)
	assert.Equal(t, BusinessSubcategories[len(BusinessSubcategories)-1], d.Subcategory)
}

func TestDraft_PrivateSubcategoryDisabled(t *testing.T) {
	d := Draft{Category: CategoryPrivate}

	require.ErrorIs(t, d.SetField(FieldSubcategory, "x"), ErrFieldDisabled)
	require.NoError(t, d.SetField(FieldSubcategory, ""))
	assert.Empty(t, d.Subcategory)
}

func TestDraft_UnknownField(t *testing.T) {
	var d Draft
	require.ErrorIs(t, d.SetField("nickname", "x"), ErrUnknownField)
	_, err := d.Field("nickname")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestDraft_PayloadDate(t *testing.T) {
	d := Draft{DateOfBirth: "2000-01-01", Category: CategoryPrivate, Subcategory: "stale"}

	p, err := d.Payload()
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01T00:00:00Z", p.DateOfBirth.UTC().Format("2006-01-02T15:04:05Z07:00"))
	assert.Empty(t, p.Subcategory)

	d.DateOfBirth = "01.01.2000"
	_, err = d.Payload()
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSubcategories(t *testing.T) {
	mode, opts := Subcategories(CategoryBusiness)
	assert.Equal(t, SubcategoryChoice, mode)
	assert.Equal(t, BusinessSubcategories, opts)

	mode, opts = Subcategories(CategoryPrivate)
	assert.Equal(t, SubcategoryDisabled, mode)
	assert.Nil(t, opts)

	mode, _ = Subcategories(CategoryOther)
	assert.Equal(t, SubcategoryFreeText, mode)
}

func TestFieldErrors_FieldsInDisplayOrder(t *testing.T) {
	fe := FieldErrors{FieldPassword: "a", FieldFirstName: "b", "zzz": "c", FieldEmail: "d"}
	assert.Equal(t, []string{FieldFirstName, FieldEmail, FieldPassword, "zzz"}, fe.Fields())

	var nilErrs FieldErrors
	assert.NotNil(t, nilErrs.Clone())
}
