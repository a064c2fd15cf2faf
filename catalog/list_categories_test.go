package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/catalog/mocks/business/category_business"
	"encore.app/catalog/model"
)

func TestListCategories(t *testing.T) {
	image := "/storage/categories/bags.png"

	testCases := []struct {
		name          string
		mockReturn    []model.Category
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name: "successful_listing",
			mockReturn: []model.Category{
				{ID: 2, Name: "Bags", Slug: "bags", Image: &image},
				{ID: 1, Name: "Shoes", Slug: "shoes"},
			},
			expectSuccess: true,
		},
		{
			name:          "empty_catalog",
			mockReturn:    []model.Category{},
			expectSuccess: true,
		},
		{
			name:          "business_logic_error",
			mockError:     &errs.Error{Code: errs.Internal, Message: "failed to list categories"},
			expectedError: "failed to list categories",
			expectSuccess: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := category_business.NewMockBusiness(ctrl)
			service := &Service{categories: mockBusiness}

			mockBusiness.EXPECT().ListCategories(gomock.Any()).Return(tc.mockReturn, tc.mockError)

			result, err := service.ListCategories(context.Background())

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.mockReturn, result.Data)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
