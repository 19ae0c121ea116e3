package baccarat

type selector func(round int, lastWinner BetTarget) BetTarget

var selectors = map[StrategyID]selector{
	StrategyBankerOnly: func(int, BetTarget) BetTarget { return TargetBanker },
	StrategyPlayerOnly: func(int, BetTarget) BetTarget { return TargetPlayer },
	StrategyFollowWinner: func(_ int, last BetTarget) BetTarget {
		if last == "" {
			return TargetBanker
		}
		return last
	},
	StrategyAlternate: func(round int, _ BetTarget) BetTarget {
		if round%2 == 0 {
			return TargetPlayer
		}
		return TargetBanker
	},
	StrategyPPBB: func(round int, _ BetTarget) BetTarget {
		if ((round-1)/2)%2 == 0 {
			return TargetPlayer
		}
		return TargetBanker
	},
}

// SelectTarget picks the bet target for a 1-based round. lastWinner is the
// most recent non-tie result, or empty before the first one.
func SelectTarget(strategy StrategyID, round int, lastWinner BetTarget) (BetTarget, error) {
	fn, ok := selectors[strategy]
	if !ok {
		return "", ErrUnknownStrategy
	}
	return fn(round, lastWinner), nil
}
