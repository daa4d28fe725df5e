package normalize_test

import (
	"testing"

	"github.com/hoangtm/restaurant-ordering/utils/normalize"
	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "diacritics and ward prefix stripped",
			in:   "Phường Bến Nghé",
			want: "ben nghe",
		},
		{
			name: "already canonical",
			in:   "ben nghe",
			want: "ben nghe",
		},
		{
			name: "dong du: đ mapped to d",
			in:   "Phường Đa Kao",
			want: "da kao",
		},
		{
			name: "uppercase Đ mapped to d",
			in:   "ĐÀ NẴNG",
			want: "da nang",
		},
		{
			name: "city prefix stripped",
			in:   "Thành phố Hồ Chí Minh",
			want: "ho chi minh",
		},
		{
			name: "town prefix stripped",
			in:   "Thị trấn Hóc Môn",
			want: "hoc mon",
		},
		{
			name: "district prefix stripped",
			in:   "Quận 1",
			want: "1",
		},
		{
			name: "rural district prefix stripped",
			in:   "Huyện Củ Chi",
			want: "cu chi",
		},
		{
			name: "commune prefix stripped",
			in:   "Xã Tân Thông Hội",
			want: "tan thong hoi",
		},
		{
			name: "only one prefix stripped",
			in:   "Quận Gò Vấp",
			want: "go vap",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  Bến Nghé  ",
			want: "ben nghe",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "prefix without remainder kept",
			in:   "Phuong",
			want: "phuong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Name(tt.in))
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"Phường Bến Nghé",
		"Thị trấn Củ Chi",
		"Quận Bình Thạnh",
		"Xã Vĩnh Lộc A",
		"Thành phố Thủ Đức",
		"ben nghe",
		"",
		"  Đống Đa  ",
	}
	for _, in := range inputs {
		once := normalize.Name(in)
		assert.Equal(t, once, normalize.Name(once), "input %q", in)
	}
}

func TestNameEquivalence(t *testing.T) {
	// The forms a caller and the directory may use for the same unit must
	// collapse to the same canonical string.
	pairs := [][2]string{
		{"Phường Bến Nghé", "ben nghe"},
		{"Quận 3", "quan 3"},
		{"Thị trấn Tân Túc", "tan tuc"},
		{"Xã Đa Phước", "da phuoc"},
	}
	for _, p := range pairs {
		assert.Equal(t, normalize.Name(p[0]), normalize.Name(p[1]))
	}
}
