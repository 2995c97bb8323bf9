package pagination

import "testing"

func TestClampPageSize(t *testing.T) {
	cfg := PageSizeConfig{Default: 20, Max: 100}

	cases := []struct {
		name  string
		value int32
		want  int
	}{
		{name: "zero uses default", value: 0, want: 20},
		{name: "negative uses default", value: -5, want: 20},
		{name: "within bounds kept", value: 42, want: 42},
		{name: "above max clamped", value: 500, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPageSize(tc.value, cfg); got != tc.want {
				t.Errorf("ClampPageSize(%d) = %d, want %d", tc.value, got, tc.want)
			}
		})
	}
}

func TestClampPageSizeNoConfig(t *testing.T) {
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Errorf("ClampPageSize with empty config = %d, want 1", got)
	}
}
