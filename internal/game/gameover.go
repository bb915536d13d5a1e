package game

import "log/slog"

// checkGameOver runs the warning and terminal checks. Resilience points
// absorb the first collapses: joy bottoming out rebounds to 10, stress
// topping out pulls back to 85, until the points run dry.
func (s *Session) checkGameOver() {
	if s.p.IsGameOver {
		return
	}

	if s.p.Joy <= 20 && s.p.Joy > 0 {
		s.warnOnce("joy", s.moodThought())
	}
	if s.p.Stress >= 80 && s.p.Stress < 100 {
		s.warnOnce("stress", "Your stress is overwhelming. The pressure is becoming unbearable.")
	}

	if s.p.Joy <= 0 {
		if s.spendResilience() {
			s.p.Joy = 10
			s.narrate("A moment of resilience: something inside you refuses to give up. "+
				"You find a small reserve of strength.", false)
			return
		}
		s.gameOver("The weight of everything has crushed your spirit. " +
			"The ants have won, filling every corner of your mind. You can't continue.")
		return
	}

	if s.p.Stress >= 100 {
		if s.spendResilience() {
			s.p.Stress = 85
			s.narrate("A moment of resilience: at the breaking point, you somehow pull back "+
				"from the edge. But barely.", false)
			return
		}
		s.gameOver("The stress has shattered you completely. " +
			"Your body refuses to function. You've collapsed.")
		return
	}

	if s.p.Fullness <= 0 {
		s.updateStat(StatStress, 2.5)
		s.updateStat(StatJoy, -3)
		s.warnOnce("starving", "You're starving! Your body is shutting down. Find food immediately!")
		if s.p.Stress >= 90 {
			s.gameOver("Exhausted from hunger and overwhelmed by stress, you collapse. " +
				"Your body has given out.")
		}
	}
}

func (s *Session) spendResilience() bool {
	if s.p.ResiliencePoints <= 0 {
		return false
	}
	s.p.ResiliencePoints--
	s.logEvent("resilience", "resilience point spent")
	slog.Debug("resilience spent", "remaining", s.p.ResiliencePoints)
	return true
}

func (s *Session) warnOnce(key, text string) {
	if s.p.warningsShown[key] {
		return
	}
	s.p.warningsShown[key] = true
	s.narrate(text, false)
}

// gameOver ends the session mid-week.
func (s *Session) gameOver(reason string) {
	s.p.IsGameOver = true
	s.sched.Cancel()
	s.logEvent("gameover", reason)
	slog.Info("game over", "day", s.p.Day, "reason", reason)
	s.presenter.GameEnded(Result{
		GameOver: true,
		Reason:   reason,
		Final:    s.snapshot(),
	})
}

// finishWeek classifies a completed week into one of five endings, and the
// deadline into a verdict when one was assigned.
func (s *Session) finishWeek() {
	s.p.IsGameOver = true
	s.sched.Cancel()

	var ending, desc string
	switch {
	case s.p.Joy <= 20:
		ending = "Barely Surviving"
		desc = "You made it through the week, but at what cost? The ants are loud, " +
			"your spirit is dim. But you're still here. That counts for something."
	case s.p.Stress >= 75:
		ending = "On the Edge"
		desc = "The week nearly broke you. You're running on fumes and anxiety. " +
			"But the weekend is here. Time to breathe."
	case s.p.Joy < 40 || s.p.Fullness < 35 || s.p.Stress > 60:
		ending = "Survival"
		desc = "Another week survived. It wasn't pretty, but you made it. " +
			"In Lagos, that's not nothing."
	case s.p.Joy >= 60 && s.p.Stress <= 45:
		ending = "Balance"
		desc = "Against the odds, you found balance. Work, life, sanity: " +
			"you kept all the plates spinning. The ants are quiet."
	default:
		ending = "Thriving"
		desc = "You didn't just survive, you lived. Lagos threw everything at you, " +
			"and you met it with grace. The ants have nothing to feed on."
	}

	var verdict string
	if s.p.Deadline > 0 {
		switch pct := s.p.DeadlinePct(); {
		case pct >= 100:
			verdict = "You completed the impossible deadline. Your boss is impressed, " +
				"even if they won't say it."
		case pct >= 80:
			verdict = "You made substantial progress on the deadline. Not perfect, " +
				"but enough to avoid the worst consequences."
		default:
			verdict = "The deadline wasn't met. There will be consequences next week. " +
				"But that's a problem for future you."
		}
	}

	s.logEvent("ending", ending)
	slog.Info("week finished", "ending", ending, "joy", s.p.Joy, "stress", s.p.Stress)
	s.presenter.GameEnded(Result{
		Ending:          ending,
		EndingDesc:      desc,
		DeadlineVerdict: verdict,
		Final:           s.snapshot(),
	})
}
