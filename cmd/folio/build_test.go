package main

import "testing"

func TestOutputName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.toml", "report.fp"},
		{"docs/ch01.toml", "ch01.fp"},
		{"noext", "noext.fp"},
		{".toml", "out.fp"},
	}
	for _, c := range cases {
		if got := outputName(c.in); got != c.want {
			t.Errorf("outputName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
