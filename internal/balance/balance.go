// Package balance holds the static tuning tables: class coefficients,
// activity decay rates, and the food menu. The tables are embedded YAML,
// decoded once at init, and read-only afterwards.
package balance

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed classes.yaml
var classesYAML []byte

//go:embed decay.yaml
var decayYAML []byte

//go:embed food.yaml
var foodYAML []byte

// ClassModifier scales costs, income, event odds, and emotional response for
// one social class.
type ClassModifier struct {
	EventChance      float64 `yaml:"event_chance"`
	GoodEventChance  float64 `yaml:"good_event_chance"`
	IncomeMultiplier float64 `yaml:"income_multiplier"`
	CostMultiplier   float64 `yaml:"cost_multiplier"`
	CommunitySupport float64 `yaml:"community_support"`
	StressFromWork   float64 `yaml:"stress_from_work"`
	JoyFromLeisure   float64 `yaml:"joy_from_leisure"`
	StartingMoney    float64 `yaml:"starting_money"`
}

// DecayRate is the per-slot stat drift for one activity kind. FullnessCost is
// always subtracted; JoyDelta and StressDelta are applied as signed.
type DecayRate struct {
	FullnessCost float64 `yaml:"fullness_cost"`
	JoyDelta     float64 `yaml:"joy_delta"`
	StressDelta  float64 `yaml:"stress_delta"`
}

// FoodItem is one entry on the food menu. Cost is the nominal price before
// class adjustment and inflation.
type FoodItem struct {
	Name          string  `yaml:"name"`
	Cost          int     `yaml:"cost"`
	FullnessBoost float64 `yaml:"fullness_boost"`
	JoyBoost      float64 `yaml:"joy_boost"`
	Venue         string  `yaml:"venue"` // "roadside", "restaurant", or "all"
	SickChance    float64 `yaml:"sick_chance"`
	Snack         bool    `yaml:"snack"`
}

var (
	classes map[string]ClassModifier
	decay   map[string]DecayRate
	foods   []FoodItem
)

func init() {
	var cf struct {
		Classes map[string]ClassModifier `yaml:"classes"`
	}
	mustDecode("classes.yaml", classesYAML, &cf)
	classes = cf.Classes

	var df struct {
		Decay map[string]DecayRate `yaml:"decay"`
	}
	mustDecode("decay.yaml", decayYAML, &df)
	decay = df.Decay

	var ff struct {
		Foods []FoodItem `yaml:"foods"`
	}
	mustDecode("food.yaml", foodYAML, &ff)
	foods = ff.Foods
}

func mustDecode(name string, data []byte, out any) {
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("balance: decode %s: %v", name, err))
	}
}

// Class returns the modifier record for a class name. The key set is fixed at
// build time, so an unknown key is a programming fault.
func Class(name string) ClassModifier {
	m, ok := classes[name]
	if !ok {
		panic(fmt.Sprintf("balance: unknown class %q", name))
	}
	return m
}

// Decay returns the per-slot drift for an activity kind name.
func Decay(kind string) DecayRate {
	d, ok := decay[kind]
	if !ok {
		panic(fmt.Sprintf("balance: unknown activity kind %q", kind))
	}
	return d
}

// Foods returns a fresh copy of the food menu. Callers own the copy; inflation
// mutates a session's copy, never the embedded table.
func Foods() []FoodItem {
	out := make([]FoodItem, len(foods))
	copy(out, foods)
	return out
}
