package model

// AdministrativeUnit is one node of the province/district/ward hierarchy as
// served by the external directory. ParentID is empty for provinces.
type AdministrativeUnit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

// AddressInput carries the raw, untrusted address fields of an order request.
// Any subset may be present; codes and names may disagree with each other.
type AddressInput struct {
	ProvinceCode string
	ProvinceName string
	DistrictCode string
	DistrictName string
	WardCode     string
	WardName     string
}

// AddressReference is the denormalized address snapshot embedded in an order
// at creation time. A complete reference has all three levels sourced from
// the directory and mutually consistent.
type AddressReference struct {
	ProvinceCode string `db:"province_code" json:"province_code"`
	ProvinceName string `db:"province_name" json:"province_name"`
	DistrictCode string `db:"district_code" json:"district_code"`
	DistrictName string `db:"district_name" json:"district_name"`
	WardCode     string `db:"ward_code" json:"ward_code"`
	WardName     string `db:"ward_name" json:"ward_name"`
}

// Complete reports whether all three levels were resolved.
func (a AddressReference) Complete() bool {
	return a.ProvinceCode != "" && a.ProvinceName != "" &&
		a.DistrictCode != "" && a.DistrictName != "" &&
		a.WardCode != "" && a.WardName != ""
}

// MissingLevels names the levels that are still unresolved, for structured
// error details.
func (a AddressReference) MissingLevels() []string {
	var missing []string
	if a.WardCode == "" || a.WardName == "" {
		missing = append(missing, "ward")
	}
	if a.DistrictCode == "" || a.DistrictName == "" {
		missing = append(missing, "district")
	}
	if a.ProvinceCode == "" || a.ProvinceName == "" {
		missing = append(missing, "province")
	}
	return missing
}
