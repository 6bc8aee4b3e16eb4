package timesheethandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcTotalHours(t *testing.T) {
	t.Run(`обычный рабочий день`, func(t *testing.T) {
		require.Equal(t, 7.0, CalcTotalHours("09:00", "17:00", 60))
	})

	t.Run(`без перерыва`, func(t *testing.T) {
		require.Equal(t, 8.0, CalcTotalHours("09:00", "17:00", 0))
	})

	t.Run(`неполный час`, func(t *testing.T) {
		require.Equal(t, 7.5, CalcTotalHours("09:15", "17:00", 15))
	})

	t.Run(`перерыв больше смены дает ноль`, func(t *testing.T) {
		require.Equal(t, 0.0, CalcTotalHours("09:00", "10:00", 120))
	})

	t.Run(`окончание раньше начала дает ноль`, func(t *testing.T) {
		require.Equal(t, 0.0, CalcTotalHours("22:00", "06:00", 0))
	})

	t.Run(`нулевая смена`, func(t *testing.T) {
		require.Equal(t, 0.0, CalcTotalHours("09:00", "09:00", 0))
	})
}
