package game

import (
	"fmt"
	"math"

	"github.com/tommyjgunn/lagosweek/internal/balance"
)

// Starting stats by job: money, stress, joy.
var jobStarts = map[Job]struct {
	money  float64
	stress float64
	joy    float64
}{
	JobMarketer:   {70000, 25, 72},
	JobProgrammer: {110000, 40, 65},
	JobDesigner:   {85000, 30, 75},
	JobArtist:     {35000, 15, 88},
}

var homeDistricts = map[SocialClass][2]Location{
	ClassWorking: {
		{Name: "Oshodi", Area: "Lagos Mainland"},
		{Name: "Mushin", Area: "Lagos Mainland"},
	},
	ClassMiddle: {
		{Name: "Surulere", Area: "Lagos Mainland"},
		{Name: "Ikeja", Area: "Lagos Mainland"},
	},
	ClassUpper: {
		{Name: "Victoria Island", Area: "Lagos Island"},
		{Name: "Lekki", Area: "Lagos Island"},
	},
}

var companyPrefixes = []string{
	"Lagos", "Naija", "West African", "Golden", "Royal", "Unity", "Diamond",
	"Sunrise", "Elite", "Heritage", "Pacific", "Mainland", "Island",
}

var companySuffixes = map[Job][]string{
	JobMarketer: {
		"Marketing Solutions", "Advertising Agency", "Brand Consultants",
		"Media Group", "Promotions Ltd", "Digital Marketing",
	},
	JobProgrammer: {
		"Tech Solutions", "Software Innovations", "Digital Systems",
		"CodeWorks", "Tech Hub", "IT Solutions", "DevOps Ltd",
	},
	JobDesigner: {
		"Design Studio", "Creative Agency", "Visual Arts", "Graphics Plus",
		"Design Works", "Creative Lab",
	},
	JobArtist: {
		"Art Gallery", "Creative Collective", "Studio", "Art House",
		"Cultural Center", "Visual Arts",
	},
}

// chooseJob fixes the character: job baseline stats, a weighted class roll,
// an age draw with its money bonus and possible car, a home district, and a
// workplace. Ends on the character summary with the begin-week prompt.
func (s *Session) chooseJob(job Job) {
	s.p.Job = job
	start := jobStarts[job]
	s.p.Money = start.money
	s.p.Stress = start.stress
	s.p.Joy = start.joy

	// Class distribution: 35% working, 45% middle, 20% upper.
	roll := s.rng.Float64()
	switch {
	case roll < 0.35:
		s.p.Class = ClassWorking
	case roll < 0.80:
		s.p.Class = ClassMiddle
	default:
		s.p.Class = ClassUpper
	}
	s.p.Money = math.Round(s.p.Money * balance.Class(s.p.Class.String()).StartingMoney)

	s.p.Age = []int{23, 28, 33}[s.rng.IntN(3)]
	if s.p.Age >= 28 {
		s.p.Money = math.Round(s.p.Money * 1.3)
		if s.p.Class != ClassWorking {
			s.p.HasTransportation = true
		}
	}

	districts := homeDistricts[s.p.Class]
	s.p.Location = districts[s.rng.IntN(2)]
	s.p.CompanyName = s.companyName(job)

	transport := "Public transport only"
	if s.p.HasTransportation {
		transport = "You own a car"
	}
	s.narrate(fmt.Sprintf(
		"You are %s, a %d-year-old %s working at %s.\n"+
			"You live in %s, %s.\n"+
			"Bank balance: ₦%.0f. Transport: %s.\n"+
			"The week ahead will test everything. Your joy, your finances, your sanity.",
		s.p.PlayerName, s.p.Age, s.p.Job.Title(), s.p.CompanyName,
		s.p.Location.Name, s.p.Location.Area, s.p.Money, transport), true)

	s.offer(ChoiceMenu{
		Choices: []Choice{
			{ID: ChooseBeginWeek, Label: "Begin your week"},
		},
	})
}

func (s *Session) companyName(job Job) string {
	prefix := companyPrefixes[s.rng.IntN(len(companyPrefixes))]
	suffixes := companySuffixes[job]
	return prefix + " " + suffixes[s.rng.IntN(len(suffixes))]
}

// beginWeek starts Monday.
func (s *Session) beginWeek() {
	s.p.created = true
	s.narrate("Monday morning. 6:00 AM. Your alarm cuts through the darkness.\n"+
		"Outside, Lagos is already awake: the distant hum of generators, the call of a muezzin, "+
		"the first honks of impatient drivers.\n"+
		"Another week begins.", true)
	s.morningMenu()
}
