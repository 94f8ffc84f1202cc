package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "Jan 2020", FormatDate("2020-01-01"))
	assert.Equal(t, "Jun 2022", FormatDate("2022-06-01"))
	assert.Equal(t, "Dec 2019", FormatDate("2019-12-31"))
}

func TestFormatDate_MonthOnly(t *testing.T) {
	assert.Equal(t, "Mar 2021", FormatDate("2021-03"))
}

func TestFormatDate_Empty(t *testing.T) {
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDate_UnparsableReturnedVerbatim(t *testing.T) {
	assert.Equal(t, "sometime in 2020", FormatDate("sometime in 2020"))
	assert.Equal(t, "2020/01/01", FormatDate("2020/01/01"))
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		current  bool
		expected string
	}{
		{"both dates", "2020-01-01", "2022-06-01", false, "Jan 2020 - Jun 2022"},
		{"current overrides end", "2020-01-01", "", true, "Jan 2020 - Present"},
		{"current overrides stored end", "2020-01-01", "2022-06-01", true, "Jan 2020 - Present"},
		{"both empty", "", "", false, ""},
		{"only start", "2020-01-01", "", false, "Jan 2020"},
		{"only end", "", "2022-06-01", false, "Jun 2022"},
		{"current with no start", "", "", true, "Present"},
		{"unparsable start kept raw", "early 2020", "2022-06-01", false, "early 2020 - Jun 2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateRange(tt.start, tt.end, tt.current))
		})
	}
}
