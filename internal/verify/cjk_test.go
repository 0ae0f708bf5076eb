package verify

import "testing"

func TestCJKNameStandalone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"short hanzi name", "张伟", true},
		{"hangul name", "김민준", true},
		{"too long to be a standalone name", "一二三四五六七八九十", false},
		{"mixed script rejected", "张伟Smith", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CJKNameStandalone(tc.input); got != tc.want {
				t.Errorf("CJKNameStandalone(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
