package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{"* * * * *", "every minute"},
		{"0 * * * *", "every hour on the hour"},
		{"*/5 * * * *", "every 5 minutes"},
		{"*/15 9-17 * * *", "every 15 minutes"},
		{"*/15,30 9 * * *", "every 15 minutes"},
		{"*/15,30 * * * *", "every 15 minutes"},
		{"5,*/20 9 * * *", "at 9:5,*/20"},
		{"15 * * * *", "at minute 15 of every hour"},
		{"0,30 * * * *", "at minute 0,30 of every hour"},
		{"0 9 * * *", "at 9:00"},
		{"0 9-17 * * *", "at 9-17:00"},
		{"30 9 * * *", "at 9:30"},
		{"5 14 * * *", "at 14:05"},
		{"* 9 * * *", "at 9:*"},
		{"1-5 9 * * *", "at 9:1-5"},
		{"0 9 * * 1-5", "at 9:00, weekdays"},
		{"0 9 * * 5,1-4", "at 9:00, weekdays"},
		{"0 9 * * 1", "at 9:00, on Monday"},
		{"0 9 * * 0,6", "at 9:00, on Sunday, Saturday"},
		{"0 0 1 * *", "at 0:00, on day 1 of the month"},
		{"0 0 1 1,7 *", "at 0:00, on day 1 of the month, in January, July"},
		{"0 0 13 * 5", "at 0:00, on Friday"},
		{"0 12 * 12 *", "at 12:00, in December"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Describe(MustParse(tt.expr)))
		})
	}
}

func TestDescribeIn_Chinese(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{"* * * * *", "每分钟"},
		{"0 * * * *", "每小时整点"},
		{"*/30 * * * *", "每 30 分钟"},
		{"0 9 * * 1-5", "9 点整，工作日"},
		{"30 9 * 1 1,3", "9:30，周一、三，一月"},
		{"0 0 1 * *", "0 点整，每月 1 号"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DescribeIn(MustParse(tt.expr), Chinese))
		})
	}
}
