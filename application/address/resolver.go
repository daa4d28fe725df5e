package address

import (
	"context"
	"strings"

	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	"github.com/hoangtm/restaurant-ordering/thirdparty/directory"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"github.com/hoangtm/restaurant-ordering/utils/normalize"
	"go.uber.org/zap"
)

// Resolver turns partial or inconsistent province/district/ward input into a
// consistent AddressReference. Directory values always win over caller-supplied
// names and codes; caller hints only scope lookups.
type Resolver interface {
	// Resolve applies the branch ladder in strict priority order:
	//   1. ward code matched inside the given district
	//   2. ward name matched (normalized, exact, unique) inside the given
	//      district, recovering from a stale or wrong ward code
	//   3. same as 2 when no ward code was supplied at all
	//   4. district/province codes only; ward fields stay caller-supplied
	//   5. nothing resolvable: ErrAddressUnresolved naming the levels
	// Directory unavailability degrades the affected branch to "not found"
	// and is logged, never surfaced from here. A branch-4 result may be
	// partial; the caller decides whether that is acceptable.
	Resolve(ctx context.Context, in *model.AddressInput) (*model.AddressReference, error)
}

type resolverImpl struct {
	dir directory.Client
}

func NewResolver(dir directory.Client) Resolver {
	return &resolverImpl{dir: dir}
}

func (r *resolverImpl) Resolve(ctx context.Context, in *model.AddressInput) (*model.AddressReference, error) {
	// Branch 1: ward and district codes present.
	if in.WardCode != "" && in.DistrictCode != "" {
		if ward := r.findWardByID(ctx, in.DistrictCode, in.WardCode); ward != nil {
			if ref := r.completeFromWard(ctx, ward, in); ref != nil {
				return ref, nil
			}
		}
	}

	// Branches 2/3: ward name inside the district, covering both a stale ward
	// code (the code lookup above came up empty) and no ward code at all.
	if in.WardName != "" && in.DistrictCode != "" {
		if ward := r.findWardByName(ctx, in.DistrictCode, in.WardName); ward != nil {
			if ref := r.completeFromWard(ctx, ward, in); ref != nil {
				return ref, nil
			}
		}
	}

	// Branch 4: district and/or province codes without usable ward
	// information. Accepts a less-complete result.
	if in.DistrictCode != "" || in.ProvinceCode != "" {
		if ref := r.resolveDistrictProvince(ctx, in); ref != nil {
			return ref, nil
		}
	}

	return nil, errors.SetCustomErrorWithDetail(constant.ErrAddressUnresolved, unresolvedDetail(in))
}

func (r *resolverImpl) findWardByID(ctx context.Context, districtID, wardID string) *model.AdministrativeUnit {
	wards, err := r.dir.ListWards(ctx, districtID)
	if err != nil {
		logger.Warn("[Resolve] ward list unavailable", zap.String("district_id", districtID), zap.Error(err))
		return nil
	}
	for i := range wards {
		if wards[i].ID == wardID {
			return &wards[i]
		}
	}
	return nil
}

// findWardByName matches on the normalized form only; zero matches or an
// ambiguous result both fail the branch. No substring or edit-distance
// matching: a false positive silently mis-assigns the order to the wrong
// ward, which is worse than asking the caller to retry.
func (r *resolverImpl) findWardByName(ctx context.Context, districtID, wardName string) *model.AdministrativeUnit {
	wards, err := r.dir.ListWards(ctx, districtID)
	if err != nil {
		logger.Warn("[Resolve] ward list unavailable", zap.String("district_id", districtID), zap.Error(err))
		return nil
	}

	target := normalize.Name(wardName)
	if target == "" {
		return nil
	}

	var found *model.AdministrativeUnit
	for i := range wards {
		if normalize.Name(wards[i].Name) != target {
			continue
		}
		if found != nil {
			logger.Warn("[Resolve] ambiguous ward name",
				zap.String("district_id", districtID), zap.String("ward_name", wardName))
			return nil
		}
		found = &wards[i]
	}
	return found
}

// completeFromWard walks the directory upward from a matched ward. The ward
// record does not carry a province id, so the district is located first
// (scoped by the caller's province hint when one exists) and the province is
// read from the district's parent. Returns nil when the chain cannot be
// completed, failing the branch.
func (r *resolverImpl) completeFromWard(ctx context.Context, ward *model.AdministrativeUnit, in *model.AddressInput) *model.AddressReference {
	district := r.lookupDistrict(ctx, ward.ParentID, in.ProvinceCode)
	if district == nil {
		return nil
	}

	province, err := r.dir.GetProvince(ctx, district.ParentID)
	if err != nil {
		logger.Warn("[Resolve] province lookup unavailable", zap.String("province_id", district.ParentID), zap.Error(err))
		return nil
	}
	if province == nil {
		return nil
	}

	return &model.AddressReference{
		ProvinceCode: province.ID,
		ProvinceName: province.Name,
		DistrictCode: district.ID,
		DistrictName: district.Name,
		WardCode:     ward.ID,
		WardName:     ward.Name,
	}
}

// lookupDistrict tries the province-scoped lookup first and retries unscoped
// when the hint yields nothing, so a wrong province hint does not sink an
// otherwise valid district code. The unscoped retry is the slow path.
func (r *resolverImpl) lookupDistrict(ctx context.Context, districtID, provinceHint string) *model.AdministrativeUnit {
	district, err := r.dir.GetDistrict(ctx, districtID, provinceHint)
	if err != nil {
		logger.Warn("[Resolve] district lookup unavailable", zap.String("district_id", districtID), zap.Error(err))
		return nil
	}
	if district == nil && provinceHint != "" {
		district, err = r.dir.GetDistrict(ctx, districtID, "")
		if err != nil {
			logger.Warn("[Resolve] district scan unavailable", zap.String("district_id", districtID), zap.Error(err))
			return nil
		}
	}
	return district
}

func (r *resolverImpl) resolveDistrictProvince(ctx context.Context, in *model.AddressInput) *model.AddressReference {
	var district, province *model.AdministrativeUnit

	if in.DistrictCode != "" {
		district = r.lookupDistrict(ctx, in.DistrictCode, in.ProvinceCode)
	}
	if district != nil {
		// The district's parent chain is authoritative even when the caller
		// supplied a (possibly wrong) province code.
		p, err := r.dir.GetProvince(ctx, district.ParentID)
		if err != nil {
			logger.Warn("[Resolve] province lookup unavailable", zap.String("province_id", district.ParentID), zap.Error(err))
		} else {
			province = p
		}
	} else if in.ProvinceCode != "" {
		p, err := r.dir.GetProvince(ctx, in.ProvinceCode)
		if err != nil {
			logger.Warn("[Resolve] province lookup unavailable", zap.String("province_id", in.ProvinceCode), zap.Error(err))
		} else {
			province = p
		}
	}

	if district == nil && province == nil {
		return nil
	}

	// Ward fields remain whatever the caller supplied.
	ref := &model.AddressReference{
		WardCode: in.WardCode,
		WardName: in.WardName,
	}
	if district != nil {
		ref.DistrictCode = district.ID
		ref.DistrictName = district.Name
	} else {
		ref.DistrictCode = in.DistrictCode
		ref.DistrictName = in.DistrictName
	}
	if province != nil {
		ref.ProvinceCode = province.ID
		ref.ProvinceName = province.Name
	} else {
		ref.ProvinceCode = in.ProvinceCode
		ref.ProvinceName = in.ProvinceName
	}
	return ref
}

func unresolvedDetail(in *model.AddressInput) string {
	level := func(name, code, label string) string {
		if name == "" && code == "" {
			return label + " missing"
		}
		return label + " invalid"
	}
	parts := []string{
		level(in.WardName, in.WardCode, "ward"),
		level(in.DistrictName, in.DistrictCode, "district"),
		level(in.ProvinceName, in.ProvinceCode, "province"),
	}
	return strings.Join(parts, ", ")
}
