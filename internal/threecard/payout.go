package threecard

// DealerQualifies reports whether the dealer holds Queen-high or better.
func DealerQualifies(dealer [3]Card) bool {
	return Evaluate(dealer).Category > HighCard || HighRank(dealer) >= Queen
}

// AnteBonus is the ante bonus multiple paid on a winning hand.
func AnteBonus(c Category) int64 {
	switch c {
	case StraightFlush:
		return 5
	case ThreeOfAKind:
		return 4
	case Straight:
		return 1
	}
	return 0
}

type OutcomeKind string

const (
	OutcomeFold         OutcomeKind = "fold"
	OutcomeNotQualified OutcomeKind = "dealer_not_qualified"
	OutcomeWin          OutcomeKind = "win"
	OutcomeTie          OutcomeKind = "tie"
	OutcomeLose         OutcomeKind = "lose"
)

// Settlement is the result of one hand. Stakes are taken from chips when they
// are placed; Returned is what goes back to chips, principal included, and
// Net is Returned minus everything staked on the hand.
type Settlement struct {
	Kind            OutcomeKind `json:"kind"`
	Ante            int64       `json:"ante"`
	PlayBet         int64       `json:"play_bet"`
	Bonus           int64       `json:"bonus"`
	Returned        int64       `json:"returned"`
	Net             int64       `json:"net"`
	PlayerHand      HandRank    `json:"player_hand"`
	DealerHand      HandRank    `json:"dealer_hand"`
	DealerQualified bool        `json:"dealer_qualified"`
}

// Settle resolves a played hand where an ante and an equal play bet are staked.
func Settle(ante int64, player, dealer [3]Card) Settlement {
	s := Settlement{
		Ante:            ante,
		PlayBet:         ante,
		PlayerHand:      Evaluate(player),
		DealerHand:      Evaluate(dealer),
		DealerQualified: DealerQualifies(dealer),
	}
	staked := s.Ante + s.PlayBet

	switch cmp := s.PlayerHand.Compare(s.DealerHand); {
	case !s.DealerQualified:
		s.Kind = OutcomeNotQualified
		s.Returned = 2*s.Ante + s.PlayBet
	case cmp > 0:
		s.Kind = OutcomeWin
		s.Bonus = ante * AnteBonus(s.PlayerHand.Category)
		s.Returned = 2*staked + s.Bonus
	case cmp == 0:
		s.Kind = OutcomeTie
		s.Returned = staked
	default:
		s.Kind = OutcomeLose
	}
	s.Net = s.Returned - staked
	return s
}

// SettleFold forfeits the ante. Hands are still ranked so they can be shown.
func SettleFold(ante int64, player, dealer [3]Card) Settlement {
	return Settlement{
		Kind:            OutcomeFold,
		Ante:            ante,
		Net:             -ante,
		PlayerHand:      Evaluate(player),
		DealerHand:      Evaluate(dealer),
		DealerQualified: DealerQualifies(dealer),
	}
}
