package game

// Intrusive-thought flavor lines, bucketed by mood. The "ants" are the
// game's image for anxiety; they get louder as joy drains and stress climbs.
var moodThoughts = map[string][]string{
	"low_joy": {
		"The ants whisper that nothing will ever change.",
		"You feel them crawling at the edges of your thoughts.",
		"Each small failure feeds the colony in your mind.",
		"The ants are louder today. They know you're struggling.",
	},
	"high_stress": {
		"The ants march in formation through your anxieties.",
		"You can almost hear them, countless legs on your nerves.",
		"The colony grows with every worry you feed it.",
		"They're building something in the dark corners of your mind.",
	},
	"recovering": {
		"The ants retreat, just a little. There's hope.",
		"You push back against the crawling thoughts.",
		"The colony is quieter. You're winning, slowly.",
		"Breathe. The ants don't own this space.",
	},
	"thriving": {
		"The ants are silent today. You've found your balance.",
		"Clear thoughts, clear mind. The colony has nothing to feed on.",
		"You remember why you keep fighting.",
		"Lagos is hard, but you're harder.",
	},
}

// moodThought picks a flavor line for the current joy/stress combination.
func (s *Session) moodThought() string {
	var bucket string
	switch {
	case s.p.Joy >= 70 && s.p.Stress <= 30:
		bucket = "thriving"
	case s.p.Joy >= 50 || s.p.Stress <= 50:
		bucket = "recovering"
	case s.p.Stress > 70:
		bucket = "high_stress"
	default:
		bucket = "low_joy"
	}
	lines := moodThoughts[bucket]
	return lines[s.rng.IntN(len(lines))]
}
