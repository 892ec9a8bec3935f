package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url       string
		wantSkip  int64
		wantLimit int64
	}{
		{"/api/products", 0, 10},
		{"/api/products?page=3&limit=20", 40, 20},
		{"/api/products?page=0&limit=-5", 0, 10},
		{"/api/products?limit=500", 0, 100},
		{"/api/products?page=abc&limit=abc", 0, 10},
	}

	for _, tc := range cases {
		r := httptest.NewRequest("GET", tc.url, nil)
		skip, limit := ParsePagination(r, 10, 100)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Errorf("%s: got skip=%d limit=%d, want skip=%d limit=%d",
				tc.url, skip, limit, tc.wantSkip, tc.wantLimit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.count, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.count, tc.limit, got, tc.want)
		}
	}
}
