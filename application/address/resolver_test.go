package address_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hoangtm/restaurant-ordering/application/address"
	"github.com/hoangtm/restaurant-ordering/constant"
	directorymocks "github.com/hoangtm/restaurant-ordering/mocks/thirdparty/directory"
	"github.com/hoangtm/restaurant-ordering/model"
	cerr "github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	provinceHCM = model.AdministrativeUnit{ID: "79", Name: "Thành phố Hồ Chí Minh"}
	districtQ1  = model.AdministrativeUnit{ID: "760", Name: "Quận 1", ParentID: "79"}
	wardBenNghe = model.AdministrativeUnit{ID: "26734", Name: "Phường Bến Nghé", ParentID: "760"}
	wardBenThanh = model.AdministrativeUnit{ID: "26737", Name: "Phường Bến Thành", ParentID: "760"}

	fullBenNghe = model.AddressReference{
		ProvinceCode: "79", ProvinceName: "Thành phố Hồ Chí Minh",
		DistrictCode: "760", DistrictName: "Quận 1",
		WardCode: "26734", WardName: "Phường Bến Nghé",
	}
)

func wardsQ1() []model.AdministrativeUnit {
	return []model.AdministrativeUnit{wardBenNghe, wardBenThanh}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    *model.AddressInput
		mockCall func(dir *directorymocks.Client)
		want     *model.AddressReference
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "branch 1: valid ward and district codes, directory chain wins over caller names",
			input: &model.AddressInput{
				ProvinceCode: "79",
				ProvinceName: "wrong province name",
				DistrictCode: "760",
				DistrictName: "wrong district name",
				WardCode:     "26734",
				WardName:     "wrong ward name",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
				dir.On("GetDistrict", mock.Anything, "760", "79").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &fullBenNghe,
		},
		{
			name: "branch 2: stale ward code recovered by ward name",
			input: &model.AddressInput{
				ProvinceCode: "79",
				DistrictCode: "760",
				WardCode:     "99999",
				WardName:     "Bến Nghé",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
				dir.On("GetDistrict", mock.Anything, "760", "79").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &fullBenNghe,
		},
		{
			name: "branch 3: no ward code, normalized name match without diacritics",
			input: &model.AddressInput{
				DistrictCode: "760",
				WardName:     "phuong ben nghe",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
				dir.On("GetDistrict", mock.Anything, "760", "").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &fullBenNghe,
		},
		{
			name: "ambiguous ward name fails the name branch, district-only result returned",
			input: &model.AddressInput{
				DistrictCode: "760",
				WardName:     "Tân Phú",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "760").Return([]model.AdministrativeUnit{
					{ID: "1", Name: "Phường Tân Phú", ParentID: "760"},
					{ID: "2", Name: "Xã Tân Phú", ParentID: "760"},
				}, nil)
				dir.On("GetDistrict", mock.Anything, "760", "").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &model.AddressReference{
				ProvinceCode: "79", ProvinceName: "Thành phố Hồ Chí Minh",
				DistrictCode: "760", DistrictName: "Quận 1",
				WardName: "Tân Phú",
			},
		},
		{
			name: "branch 4: district and province codes only",
			input: &model.AddressInput{
				ProvinceCode: "79",
				DistrictCode: "760",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("GetDistrict", mock.Anything, "760", "79").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &model.AddressReference{
				ProvinceCode: "79", ProvinceName: "Thành phố Hồ Chí Minh",
				DistrictCode: "760", DistrictName: "Quận 1",
			},
		},
		{
			name: "branch 4: wrong province hint retried unscoped",
			input: &model.AddressInput{
				ProvinceCode: "01",
				DistrictCode: "760",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("GetDistrict", mock.Anything, "760", "01").Return(nil, nil)
				dir.On("GetDistrict", mock.Anything, "760", "").Return(&districtQ1, nil)
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &model.AddressReference{
				ProvinceCode: "79", ProvinceName: "Thành phố Hồ Chí Minh",
				DistrictCode: "760", DistrictName: "Quận 1",
			},
		},
		{
			name: "directory outage degrades ward branch, province still resolved",
			input: &model.AddressInput{
				ProvinceCode: "79",
				DistrictCode: "760",
				WardCode:     "26734",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "760").Return(nil, errors.New("timeout"))
				dir.On("GetDistrict", mock.Anything, "760", "79").Return(nil, errors.New("timeout"))
				dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)
			},
			want: &model.AddressReference{
				ProvinceCode: "79", ProvinceName: "Thành phố Hồ Chí Minh",
				DistrictCode: "760",
				WardCode:     "26734",
			},
		},
		{
			name:  "branch 5: nothing resolvable",
			input: &model.AddressInput{},
			mockCall: func(dir *directorymocks.Client) {
			},
			wantErr: true,
			errCode: constant.ErrAddressUnresolved,
		},
		{
			name: "branch 5: invalid codes everywhere",
			input: &model.AddressInput{
				ProvinceCode: "00",
				DistrictCode: "000",
				WardCode:     "00000",
			},
			mockCall: func(dir *directorymocks.Client) {
				dir.On("ListWards", mock.Anything, "000").Return(nil, nil)
				dir.On("GetDistrict", mock.Anything, "000", "00").Return(nil, nil)
				dir.On("GetDistrict", mock.Anything, "000", "").Return(nil, nil)
				dir.On("GetProvince", mock.Anything, "00").Return(nil, nil)
			},
			wantErr: true,
			errCode: constant.ErrAddressUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := directorymocks.NewClient(t)
			if tt.mockCall != nil {
				tt.mockCall(dir)
			}
			resolver := address.NewResolver(dir)

			got, err := resolver.Resolve(context.Background(), tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var customErr cerr.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], customErr.ErrorCode())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A stale ward code with a good ward name must land on exactly the same
// reference a valid code would have produced.
func TestResolveFallbackEquivalence(t *testing.T) {
	byCode := directorymocks.NewClient(t)
	byCode.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
	byCode.On("GetDistrict", mock.Anything, "760", "79").Return(&districtQ1, nil)
	byCode.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)

	byName := directorymocks.NewClient(t)
	byName.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
	byName.On("GetDistrict", mock.Anything, "760", "79").Return(&districtQ1, nil)
	byName.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)

	viaCode, err := address.NewResolver(byCode).Resolve(context.Background(), &model.AddressInput{
		ProvinceCode: "79", DistrictCode: "760", WardCode: "26734",
	})
	require.NoError(t, err)

	viaName, err := address.NewResolver(byName).Resolve(context.Background(), &model.AddressInput{
		ProvinceCode: "79", DistrictCode: "760", WardCode: "99999", WardName: "ben nghe",
	})
	require.NoError(t, err)

	assert.Equal(t, viaCode, viaName)
}

// The returned triple must be internally consistent: the ward's district and
// the district's province come from the directory's own parent chain.
func TestResolveConsistency(t *testing.T) {
	dir := directorymocks.NewClient(t)
	dir.On("ListWards", mock.Anything, "760").Return(wardsQ1(), nil)
	dir.On("GetDistrict", mock.Anything, "760", "").Return(&districtQ1, nil)
	dir.On("GetProvince", mock.Anything, "79").Return(&provinceHCM, nil)

	got, err := address.NewResolver(dir).Resolve(context.Background(), &model.AddressInput{
		DistrictCode: "760", WardCode: "26737",
	})
	require.NoError(t, err)
	require.True(t, got.Complete())
	assert.Equal(t, wardBenThanh.ID, got.WardCode)
	assert.Equal(t, wardBenThanh.ParentID, got.DistrictCode)
	assert.Equal(t, districtQ1.ParentID, got.ProvinceCode)
}
