package utils_test

import (
	"testing"

	"github.com/exebone56/ecom-pulse2/utils"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"2.5", 0},
		{"-4", -4},
	}
	for _, tc := range cases {
		if got := utils.ParseQuantity(tc.raw); got != tc.want {
			t.Errorf("ParseQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"10.50", "10.5"},
		{"10,50", "10.5"},
		{"1 234,50", "1234.5"},
		{"1,234.50", "1234.5"},
		{"", "0"},
		{"free", "0"},
	}
	for _, tc := range cases {
		if got := utils.ParseAmount(tc.raw); got.String() != tc.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
