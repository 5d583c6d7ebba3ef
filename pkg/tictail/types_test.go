package tictail_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tictail/tictail-go/pkg/tictail"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2012-05-01T00:47:16", time.Date(2012, 5, 1, 0, 47, 16, 0, time.UTC), true},
		{"2014-06-10T23:07:49.674233", time.Date(2014, 6, 10, 23, 7, 49, 674233000, time.UTC), true},
		{"2012-05-01T00:47:16Z", time.Date(2012, 5, 1, 0, 47, 16, 0, time.UTC), true},
		{"2012-05-01 00:47:16", time.Date(2012, 5, 1, 0, 47, 16, 0, time.UTC), true},
		{"2012-05-01", time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, ok := tictail.ParseTime(testCase.input)
			assert.Equal(t, testCase.ok, ok)
			assert.True(t, testCase.want.Equal(got), "got %s", got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2012-05-01T00:47:16", tictail.FormatTime(time.Date(2012, 5, 1, 0, 47, 16, 0, time.UTC)))
	assert.Equal(t, "2014-06-10T23:07:49.674233",
		tictail.FormatTime(time.Date(2014, 6, 10, 23, 7, 49, 674233000, time.UTC)))
	assert.Equal(t, "2014-06-10T23:07:49.500000",
		tictail.FormatTime(time.Date(2014, 6, 10, 23, 7, 49, 500000000, time.UTC)))

	stockholm := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, "2012-05-01T00:47:16", tictail.FormatTime(time.Date(2012, 5, 1, 2, 47, 16, 0, stockholm)))
}
