package domain

import "testing"

func TestLayoutMapWidth(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   int
	}{
		{
			name:   "narrow subtracts three padding units and both borders",
			layout: Layout{BodyWidth: 500, ContainerWidth: 400},
			want:   400 - 3*16 - 2*2,
		},
		{
			name:   "narrow truncates fractional widths",
			layout: Layout{BodyWidth: 500, ContainerWidth: 400.9},
			want:   348,
		},
		{
			name:   "narrow ignores sibling width",
			layout: Layout{BodyWidth: 767, ContainerWidth: 700, SiblingWidth: 300},
			want:   700 - 48 - 4,
		},
		{
			name:   "breakpoint itself is wide",
			layout: Layout{BodyWidth: 768, ContainerWidth: 700, SiblingWidth: 300},
			want:   700 - 300 - 4*16 - 2*2,
		},
		{
			name:   "wide subtracts sibling and one extra padding unit",
			layout: Layout{BodyWidth: 1280, ContainerWidth: 960, SiblingWidth: 320},
			want:   572,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.layout.MapWidth(); got != tc.want {
				t.Fatalf("MapWidth() = %d, want %d", got, tc.want)
			}
		})
	}
}
