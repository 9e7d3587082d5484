package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_SelectorOrder(t *testing.T) {
	categories := Categories()

	require.Len(t, categories, 9)
	assert.Equal(t, CategoryFoodDining, categories[0])
	assert.Equal(t, CategoryIncome, categories[7])
	assert.Equal(t, CategoryOther, categories[8])
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"Food & Dining", CategoryFoodDining, false},
		{"Income", CategoryIncome, false},
		{"Other", CategoryOther, false},
		{"Housing", "", true},
		{"food & dining", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Color(t *testing.T) {
	assert.Equal(t, "bg-blue-100 text-blue-800", CategoryFoodDining.Color())
	assert.Equal(t, "bg-purple-100 text-purple-800", CategoryShopping.Color())
	assert.Equal(t, "bg-indigo-100 text-indigo-800", CategoryTransportation.Color())
	assert.Equal(t, "bg-pink-100 text-pink-800", CategoryEntertainment.Color())
	assert.Equal(t, "bg-green-100 text-green-800", CategoryIncome.Color())

	for _, c := range []Category{CategoryBillsUtilities, CategoryHealthFitness, CategoryTravel, CategoryOther} {
		assert.Equal(t, "bg-gray-100 text-gray-800", c.Color())
	}
}
