package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hoangtm/restaurant-ordering/application/order"
	"github.com/hoangtm/restaurant-ordering/constant"
	catalogmocks "github.com/hoangtm/restaurant-ordering/mocks/repository/catalog"
	"github.com/hoangtm/restaurant-ordering/model"
	cerr "github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		raw      *model.RawLineItem
		mockCall func(repo *catalogmocks.CatalogRepository)
		want     *model.LineItemRef
		errType  constant.ErrorType
	}{
		{
			name: "explicit productId",
			raw:  &model.RawLineItem{ProductID: "P1", Quantity: 2, Price: 50000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ProductExists", mock.Anything, "P1").Return(true, nil).Once()
			},
			want: &model.LineItemRef{ProductID: "P1", Quantity: 2, Price: 50000},
		},
		{
			name: "explicit comboId",
			raw:  &model.RawLineItem{ComboID: "C1", Quantity: 1, Price: 120000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ComboExists", mock.Anything, "C1").Return(true, nil).Once()
			},
			want: &model.LineItemRef{ComboID: "C1", Quantity: 1, Price: 120000},
		},
		{
			name:    "both productId and comboId rejected",
			raw:     &model.RawLineItem{ProductID: "P1", ComboID: "C1", Quantity: 1, Price: 10000},
			errType: constant.ErrItemParse,
		},
		{
			name: "id routed by type combo",
			raw:  &model.RawLineItem{ID: "C2", Type: "combo", Quantity: 3, Price: 90000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ComboExists", mock.Anything, "C2").Return(true, nil).Once()
			},
			want: &model.LineItemRef{ComboID: "C2", Quantity: 3, Price: 90000},
		},
		{
			name: "id routed by type product",
			raw:  &model.RawLineItem{ID: "P2", Type: "product", Quantity: 1, Price: 45000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ProductExists", mock.Anything, "P2").Return(true, nil).Once()
			},
			want: &model.LineItemRef{ProductID: "P2", Quantity: 1, Price: 45000},
		},
		{
			name: "untyped id defaults to product",
			raw:  &model.RawLineItem{ID: "P3", Quantity: 1, Price: 35000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ProductExists", mock.Anything, "P3").Return(true, nil).Once()
			},
			want: &model.LineItemRef{ProductID: "P3", Quantity: 1, Price: 35000},
		},
		{
			name:    "unknown type rejected",
			raw:     &model.RawLineItem{ID: "X1", Type: "voucher", Quantity: 1, Price: 10000},
			errType: constant.ErrItemParse,
		},
		{
			name:    "no reference at all",
			raw:     &model.RawLineItem{Quantity: 1, Price: 10000},
			errType: constant.ErrItemParse,
		},
		{
			name:    "zero quantity rejected",
			raw:     &model.RawLineItem{ProductID: "P1", Quantity: 0, Price: 10000},
			errType: constant.ErrItemParse,
		},
		{
			name:    "fractional quantity rejected",
			raw:     &model.RawLineItem{ProductID: "P1", Quantity: 1.5, Price: 10000},
			errType: constant.ErrItemParse,
		},
		{
			name:    "negative price rejected",
			raw:     &model.RawLineItem{ProductID: "P1", Quantity: 1, Price: -1},
			errType: constant.ErrItemParse,
		},
		{
			name: "nonexistent product",
			raw:  &model.RawLineItem{ProductID: "P404", Quantity: 1, Price: 10000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ProductExists", mock.Anything, "P404").Return(false, nil).Once()
			},
			errType: constant.ErrInvalidReference,
		},
		{
			name: "nonexistent combo",
			raw:  &model.RawLineItem{ComboID: "C404", Quantity: 1, Price: 10000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ComboExists", mock.Anything, "C404").Return(false, nil).Once()
			},
			errType: constant.ErrInvalidReference,
		},
		{
			name: "catalog lookup failure",
			raw:  &model.RawLineItem{ProductID: "P1", Quantity: 1, Price: 10000},
			mockCall: func(repo *catalogmocks.CatalogRepository) {
				repo.On("ProductExists", mock.Anything, "P1").Return(false, errors.New("connection refused")).Once()
			},
			errType: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			classifier := order.NewItemClassifier(repo)

			got, err := classifier.Classify(context.Background(), tt.raw)

			if tt.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			var customErr cerr.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.errType, customErr.ErrorType())
		})
	}
}
