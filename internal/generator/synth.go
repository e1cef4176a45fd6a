package generator

import (
	"math"
	"time"

	"GridPulse/internal/domain/models"
	"GridPulse/pkg/util"
)

// Physical floors and clamps applied to every generated point, regardless of
// parameter combination.
const (
	minPrice        = 20.0
	minDemandFactor = 0.5
	minRenewables   = 5.0
	maxRenewables   = 95.0
	minCarbon       = 80.0
)

// phase captures where a timestamp sits inside the local day and week.
type phase struct {
	day  float64 // fraction of the local day elapsed, minute resolution
	week float64 // fraction of the week elapsed, Monday = 0
}

func phaseAt(ts time.Time, loc *time.Location) phase {
	local := ts.In(loc)
	minutesOfDay := float64(local.Hour()*60 + local.Minute())
	day := minutesOfDay / (24.0 * 60.0)
	weekday := (int(local.Weekday()) + 6) % 7
	week := (float64(weekday) + day) / 7.0
	return phase{day: day, week: week}
}

// noiseAt is the deterministic pseudo-noise term, keyed only on the wall-clock
// minute bucket and the market ordinal. Identical inputs reproduce identical
// noise; the ordinal offset decorrelates markets from each other.
func noiseAt(ts time.Time, ordinal int) float64 {
	minutes := ts.Unix() / 60
	seed := float64(minutes)/15.0 + float64(ordinal)*0.73
	return math.Sin(seed) + 0.4*math.Cos(seed*1.7)
}

func priceAt(p models.MarketParameters, hoursFromStart float64, ph phase, noise float64) float64 {
	daily := p.DailySwing * math.Sin(2*math.Pi*ph.day)
	weekly := p.WeeklySwing * math.Sin(2*math.Pi*ph.week)
	structural := p.TrendSlope * (hoursFromStart / 24.0)
	stochastic := noise * p.Volatility
	return math.Max(minPrice, p.BasePrice+daily+weekly+structural+stochastic)
}

func demandAt(p models.MarketParameters, hoursFromStart float64, ph phase, price, noise float64) float64 {
	diurnal := p.DemandSwing * (1.1 - math.Cos(2*math.Pi*ph.day-math.Pi/6))
	weekly := p.DemandSwing * 0.25 * math.Sin(2*math.Pi*ph.week)
	priceCoupling := (price - p.BasePrice) * 35.0
	shortNoise := 180.0 * math.Sin(hoursFromStart/4.5+noise)
	demand := p.DemandBase + diurnal + weekly + priceCoupling + shortNoise
	return math.Max(p.DemandBase*minDemandFactor, demand)
}

func renewablesAt(p models.MarketParameters, hoursFromStart float64, ph phase, noise float64) float64 {
	solarShape := p.RenewableSwing * math.Max(0, math.Sin(math.Pi*ph.day))
	windShape := p.RenewableSwing * 0.35 * math.Sin(2*math.Pi*ph.week)
	intraDay := 2.5 * math.Sin(hoursFromStart/3.5+noise)
	return util.Clamp(p.RenewableBase+solarShape+windShape+intraDay, minRenewables, maxRenewables)
}

func carbonAt(p models.MarketParameters, demand, renewablesShare float64) float64 {
	renewableFactor := 1.0 - renewablesShare/100.0
	loadInfluence := 0.04 * (demand - p.DemandBase)
	return math.Max(minCarbon, p.CarbonBase+p.CarbonSwing*renewableFactor+loadInfluence)
}
