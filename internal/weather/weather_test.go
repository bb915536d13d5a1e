package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntensityStaysInRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w := NewWeek(seed)
		for day := 0; day < 5; day++ {
			v := w.Intensity(day)
			require.GreaterOrEqual(t, v, 0.0, "seed %d day %d", seed, day)
			require.LessOrEqual(t, v, 1.0, "seed %d day %d", seed, day)
		}
	}
}

func TestRainRateNearOneNightInFour(t *testing.T) {
	rained, total := 0, 0
	for seed := int64(0); seed < 400; seed++ {
		w := NewWeek(seed)
		for day := 0; day < 5; day++ {
			total++
			if w.RainedOvernight(day) {
				rained++
			}
		}
	}

	rate := float64(rained) / float64(total)
	require.Greater(t, rate, 0.15, "rain rate %f too dry", rate)
	require.Less(t, rate, 0.35, "rain rate %f too wet", rate)
}

func TestSameSeedSameWeather(t *testing.T) {
	a := NewWeek(17)
	b := NewWeek(17)
	for day := 0; day < 5; day++ {
		require.Equal(t, a.RainedOvernight(day), b.RainedOvernight(day), "day %d", day)
	}
}
