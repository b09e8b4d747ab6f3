package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/internal/models"
)

func TestParseStateFilter(t *testing.T) {
	cases := []struct {
		input string
		want  models.StateFilter
		ok    bool
	}{
		{"ALL", models.FilterAll, true},
		{"current", models.FilterCurrent, true},
		{"Past", models.FilterPast, true},
		{"FUTURE", models.FilterFuture, true},
		{"waiting", models.FilterWaiting, true},
		{"APPROVED", models.FilterApproved, true},
		{"rejected", models.FilterRejected, true},
		{"SOMETHING", models.FilterAll, false},
		{"", models.FilterAll, false},
	}
	for _, tc := range cases {
		got, ok := models.ParseStateFilter(tc.input)
		assert.Equal(t, tc.want, got, tc.input)
		assert.Equal(t, tc.ok, ok, tc.input)
	}
}
