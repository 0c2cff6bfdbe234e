package library

import "testing"

func TestFormatNumbering(t *testing.T) {
	cases := []struct {
		pattern string
		nums    []int
		want    string
	}{
		{"1.", nil, ""},
		{"1.", []int{1}, "1."},
		{"1.", []int{2}, "2."},
		{"1.1.", []int{1, 2}, "1.2."},
		{"1.", []int{1, 2}, "1.2."},
		{"1.", []int{3, 1, 4}, "3.1.4."},
		{"1.a", []int{2, 3}, "2.c"},
		{"A", []int{1}, "A"},
		{"A", []int{26}, "Z"},
		{"A", []int{27}, "AA"},
		{"a)", []int{4}, "d)"},
		{"", []int{1, 2}, ""},
		{"-", []int{1}, ""},
	}
	for _, tc := range cases {
		if got := formatNumbering(tc.pattern, tc.nums); got != tc.want {
			t.Errorf("formatNumbering(%q, %v) = %q, want %q", tc.pattern, tc.nums, got, tc.want)
		}
	}
}

func TestFormatCounter(t *testing.T) {
	if got := formatCounter('1', 12); got != "12" {
		t.Errorf("arabic = %q", got)
	}
	if got := formatCounter('a', 28); got != "ab" {
		t.Errorf("letters = %q", got)
	}
	if got := formatCounter('A', 3); got != "C" {
		t.Errorf("upper letters = %q", got)
	}
	if got := formatCounter('1', 0); got != "1" {
		t.Errorf("counters clamp at one, got %q", got)
	}
}
