package hex

type TimeLimitState int

const (
	TimeLimitInactive TimeLimitState = iota
	TimeLimitCounting
	TimeLimitExpired
)

func (s TimeLimitState) String() string {
	switch s {
	case TimeLimitCounting:
		return "counting"
	case TimeLimitExpired:
		return "expired"
	}
	return "inactive"
}

func TimeLimitStateOf(set *ActiveSet) TimeLimitState {
	if set == nil || set.Flashy != TimeLimit || set.TimeLimitTotal <= 0 {
		return TimeLimitInactive
	}
	if set.TimeLimitTicks > 0 {
		return TimeLimitCounting
	}
	return TimeLimitExpired
}

// TickTimeLimit spends one tick of the countdown. It returns the alert whose
// tick count was hit exactly, if any, and whether the limit has run out.
func TickTimeLimit(set *ActiveSet, alerts []Threshold) (*Threshold, bool) {
	if TimeLimitStateOf(set) == TimeLimitInactive {
		return nil, false
	}
	if set.TimeLimitTicks > 0 {
		set.TimeLimitTicks--
		for i := range alerts {
			if alerts[i].Ticks == set.TimeLimitTicks {
				return &alerts[i], set.TimeLimitTicks <= 0
			}
		}
	}
	return nil, set.TimeLimitTicks <= 0
}

// SecondsLeft rounds the remaining ticks up to whole seconds.
func SecondsLeft(set *ActiveSet, tps int) int {
	if set == nil || set.TimeLimitTicks <= 0 || tps <= 0 {
		return 0
	}
	return (set.TimeLimitTicks + tps - 1) / tps
}
