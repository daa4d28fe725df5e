package order

import (
	"encoding/json"
	"testing"

	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	cerr "github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []model.RawLineItem
		wantErr bool
	}{
		{
			name: "plain array",
			raw:  `[{"productId":"P1","quantity":2,"price":50000}]`,
			want: []model.RawLineItem{{ProductID: "P1", Quantity: 2, Price: 50000}},
		},
		{
			name: "single object",
			raw:  `{"comboId":"C1","quantity":1,"price":120000}`,
			want: []model.RawLineItem{{ComboID: "C1", Quantity: 1, Price: 120000}},
		},
		{
			name: "string-wrapped array",
			raw:  `"[{\"productId\":\"P1\",\"quantity\":\"2\",\"price\":\"50000\"}]"`,
			want: []model.RawLineItem{{ProductID: "P1", Quantity: 2, Price: 50000}},
		},
		{
			name: "string-wrapped object",
			raw:  `"{\"id\":\"P2\",\"type\":\"product\",\"quantity\":1,\"price\":45000}"`,
			want: []model.RawLineItem{{ID: "P2", Type: "product", Quantity: 1, Price: 45000}},
		},
		{
			name: "numeric ids coerced to strings",
			raw:  `[{"productId":12,"quantity":1,"price":10000}]`,
			want: []model.RawLineItem{{ProductID: "12", Quantity: 1, Price: 10000}},
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "null payload",
			raw:     `null`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			raw:     ``,
			wantErr: true,
		},
		{
			name:    "scalar payload",
			raw:     `42`,
			wantErr: true,
		},
		{
			name:    "string wrapping garbage",
			raw:     `"not json at all"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseItems(json.RawMessage(tt.raw))

			if tt.wantErr {
				require.Error(t, err)
				var customErr cerr.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, constant.ErrItemParse, customErr.ErrorType())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
