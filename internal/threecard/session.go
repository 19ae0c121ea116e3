package threecard

import (
	"errors"
	"math"

	"casino-sim/internal/randsrc"
)

var (
	ErrInsufficientChips = errors.New("insufficient_chips")
	ErrWrongPhase        = errors.New("wrong_phase")
)

type Phase string

const (
	PhaseBetting Phase = "betting"
	PhaseDealt   Phase = "dealt"
	PhaseResult  Phase = "result"
)

// HardMaxChips is the largest bankroll a table accepts. One hand returns at
// most 9 antes and the ante never exceeds chips, so chips stay below
// 10*HardMaxChips and inside int64.
const HardMaxChips int64 = math.MaxInt64 / 16

type Limits struct {
	MinChips int64 `json:"min_chips"`
	MinAnte  int64 `json:"min_ante"`
	MaxChips int64 `json:"max_chips"`
}

func DefaultLimits() Limits {
	return Limits{MinChips: 1000, MinAnte: 1000, MaxChips: 1_000_000_000_000}
}

// maxChips is MaxChips bounded by HardMaxChips; zero means no table limit.
func (l Limits) maxChips() int64 {
	if l.MaxChips <= 0 {
		return HardMaxChips
	}
	return min(l.MaxChips, HardMaxChips)
}

func (l Limits) clampChips(chips int64) int64 {
	return min(max(chips, l.MinChips), l.maxChips())
}

// Session is one table's state. Transitions take a Session by value and
// return the next one; a refused transition returns the input unchanged with
// an error.
type Session struct {
	Phase  Phase   `json:"phase"`
	Chips  int64   `json:"chips"`
	Ante   int64   `json:"ante"`
	Limits Limits  `json:"limits"`
	Player [3]Card `json:"player_cards"`
	Dealer [3]Card `json:"dealer_cards"`
	Hands  int     `json:"hands_played"`

	Last *Settlement `json:"last_result,omitempty"`
}

func NewSession(chips, ante int64, lim Limits) Session {
	return Session{
		Phase:  PhaseBetting,
		Chips:  lim.clampChips(chips),
		Ante:   min(max(ante, lim.MinAnte), lim.maxChips()),
		Limits: lim,
	}
}

// SetChips changes the bankroll within the table limits. Only allowed
// between hands.
func SetChips(s Session, chips int64) (Session, error) {
	if s.Phase != PhaseBetting {
		return s, ErrWrongPhase
	}
	s.Chips = s.Limits.clampChips(chips)
	return s, nil
}

// SetAnte raises values below the table minimum and refuses antes the
// bankroll cannot cover.
func SetAnte(s Session, ante int64) (Session, error) {
	if s.Phase != PhaseBetting {
		return s, ErrWrongPhase
	}
	ante = max(ante, s.Limits.MinAnte)
	if ante > s.Chips {
		return s, ErrInsufficientChips
	}
	s.Ante = ante
	return s, nil
}

// Deal takes the ante and deals both hands from one fresh shuffle.
func Deal(s Session, src randsrc.Source) (Session, error) {
	if s.Phase != PhaseBetting {
		return s, ErrWrongPhase
	}
	if s.Ante > s.Chips {
		return s, ErrInsufficientChips
	}
	deck := NewDeck()
	deck.Shuffle(src)
	player, dealer, err := deck.DealHands()
	if err != nil {
		return s, err
	}
	s.Player, s.Dealer = player, dealer
	s.Chips -= s.Ante
	s.Phase = PhaseDealt
	s.Last = nil
	return s, nil
}

func Fold(s Session) (Session, Settlement, error) {
	if s.Phase != PhaseDealt {
		return s, Settlement{}, ErrWrongPhase
	}
	res := SettleFold(s.Ante, s.Player, s.Dealer)
	s.Phase = PhaseResult
	s.Hands++
	s.Last = &res
	return s, res, nil
}

// Play stakes the play bet and settles the hand against the dealer.
func Play(s Session) (Session, Settlement, error) {
	if s.Phase != PhaseDealt {
		return s, Settlement{}, ErrWrongPhase
	}
	if s.Ante > s.Chips {
		return s, Settlement{}, ErrInsufficientChips
	}
	res := Settle(s.Ante, s.Player, s.Dealer)
	// Winnings above the table limit are not credited.
	s.Chips = min(s.Chips-res.PlayBet+res.Returned, s.Limits.maxChips())
	s.Phase = PhaseResult
	s.Hands++
	s.Last = &res
	return s, res, nil
}

// NextHand clears the table after a result.
func NextHand(s Session) (Session, error) {
	if s.Phase != PhaseResult {
		return s, ErrWrongPhase
	}
	s.Player, s.Dealer = [3]Card{}, [3]Card{}
	s.Phase = PhaseBetting
	return s, nil
}
