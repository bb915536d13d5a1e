package game

import (
	"fmt"
	"math"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

// updateStat applies a delta with bounds checking and returns the new value.
// Joy, fullness and stress clamp to [0, 100]; money floors at a small allowed
// debt. A realized change of at least 0.5 in magnitude is reported to the
// presenter as the delta actually applied, not the delta requested.
func (s *Session) updateStat(st Stat, delta float64) float64 {
	field := s.statField(st)
	if delta == 0 || s.p.IsGameOver {
		return *field
	}

	old := *field
	v := old + delta
	switch st {
	case StatJoy, StatFullness, StatStress:
		v = math.Max(0, math.Min(100, v))
	case StatMoney:
		v = math.Max(moneyFloor, v)
	}
	*field = v

	if applied := v - old; math.Abs(applied) >= 0.5 {
		s.presenter.StatChanged(st, applied)
	}
	return v
}

func (s *Session) statField(st Stat) *float64 {
	switch st {
	case StatJoy:
		return &s.p.Joy
	case StatFullness:
		return &s.p.Fullness
	case StatStress:
		return &s.p.Stress
	case StatMoney:
		return &s.p.Money
	default:
		panic(fmt.Sprintf("game: unknown stat %d", st))
	}
}

// modifyCost scales a nominal price by the player's class cost multiplier.
// Before creation finishes the nominal price stands.
func (s *Session) modifyCost(base float64) float64 {
	if !s.p.created {
		return base
	}
	return math.Round(base * balance.Class(s.p.Class.String()).CostMultiplier)
}

// receivePay credits income scaled by the class income multiplier and returns
// the adjusted amount.
func (s *Session) receivePay(amount float64) float64 {
	adjusted := amount
	if s.p.created {
		adjusted = math.Round(amount * balance.Class(s.p.Class.String()).IncomeMultiplier)
	}
	s.updateStat(StatMoney, adjusted)
	return adjusted
}

func (s *Session) canAfford(cost float64) bool {
	return s.p.Money >= cost
}

// interact runs the cross-stat coupling pass, then the terminal checks.
// Hunger feeds stress and drains joy, sustained stress drains joy, and high
// joy bleeds a little stress off.
func (s *Session) interact() {
	if s.p.IsGameOver {
		return
	}

	if s.p.Fullness <= 25 {
		severity := (25 - s.p.Fullness) / 25
		s.updateStat(StatStress, severity*1.5)
		s.updateStat(StatJoy, -severity*1.2)
	}

	if s.p.Stress > 55 {
		severity := (s.p.Stress - 55) / 45
		s.updateStat(StatJoy, -severity*0.8)
	}

	if s.p.Joy > 80 && s.p.Stress > 15 {
		s.updateStat(StatStress, -0.2)
	}

	s.checkGameOver()
}
