package threecard

import (
	"encoding/json"
	"math"
	"testing"

	"casino-sim/internal/randsrc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(t *testing.T, s string) [3]Card {
	t.Helper()
	h, err := ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestNewDeckOrder(t *testing.T) {
	d := NewDeck()
	require.Equal(t, 52, d.Len())
	seen := map[Card]bool{}
	var first, last Card
	for i := 0; i < 52; i++ {
		c, err := d.Deal()
		require.NoError(t, err)
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
		if i == 0 {
			first = c
		}
		last = c
	}
	assert.Equal(t, Card{Rank: Two, Suit: Spades}, first)
	assert.Equal(t, Card{Rank: Ace, Suit: Clubs}, last)
	_, err := d.Deal()
	assert.ErrorIs(t, err, ErrDeckEmpty)
}

func TestShuffleFisherYatesFromEnd(t *testing.T) {
	d := NewDeck()
	d.Shuffle(&randsrc.Sequence{Ints: []int{0}})
	player, dealer, err := d.DealHands()
	require.NoError(t, err)
	assert.Equal(t, hand(t, "3♠ 4♠ 5♠"), player)
	assert.Equal(t, hand(t, "6♠ 7♠ 8♠"), dealer)
	assert.Equal(t, 46, d.Len())
}

func TestShuffleKeepsEveryCard(t *testing.T) {
	d := NewDeck()
	d.Shuffle(randsrc.NewSeeded(11))
	seen := map[Card]bool{}
	for d.Len() > 0 {
		c, err := d.Deal()
		require.NoError(t, err)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestParseCard(t *testing.T) {
	cases := map[string]Card{
		"A♠":  {Rank: Ace, Suit: Spades},
		"10♥": {Rank: Ten, Suit: Hearts},
		"Td":  {Rank: Ten, Suit: Diamonds},
		"qc":  {Rank: Queen, Suit: Clubs},
		"2s":  {Rank: Two, Suit: Spades},
	}
	for in, want := range cases {
		got, err := ParseCard(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "1s", "Ax", "♠", "11h"} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, bad)
	}
	_, err := ParseHand("A♠ K♠")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardJSON(t *testing.T) {
	b, err := json.Marshal(hand(t, "A♠ 10♥ 2♣"))
	require.NoError(t, err)
	assert.JSONEq(t, `["A♠","10♥","2♣"]`, string(b))

	var back [3]Card
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, hand(t, "A♠ 10♥ 2♣"), back)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		cards    string
		category Category
		value    int
	}{
		{"A♥ 2♥ 3♥", StraightFlush, 14},
		{"Q♣ J♣ K♣", StraightFlush, 13},
		{"K♠ K♥ K♦", ThreeOfAKind, 13},
		{"A♠ 2♥ 3♦", Straight, 14},
		{"4♠ 5♥ 6♦", Straight, 6},
		{"Q♠ K♥ A♦", Straight, 14},
		{"2♠ 7♠ J♠", Flush, 11072},
		{"9♠ 9♥ 4♦", OnePair, 904},
		{"4♦ 9♠ 9♥", OnePair, 904},
		{"2♣ 2♦ A♠", OnePair, 214},
		{"K♠ A♥ 2♦", HighCard, 14132},
		{"2♣ 5♦ 9♥", HighCard, 9052},
	}
	for _, tc := range cases {
		got := Evaluate(hand(t, tc.cards))
		assert.Equal(t, tc.category, got.Category, tc.cards)
		assert.Equal(t, tc.value, got.Value, tc.cards)
	}
}

func TestAceLowStraightOutranksOtherStraights(t *testing.T) {
	aceLow := Evaluate(hand(t, "A♠ 2♥ 3♦"))
	fourHigh := Evaluate(hand(t, "4♠ 5♥ 6♦"))
	assert.Equal(t, 1, aceLow.Compare(fourHigh))
	assert.True(t, aceLow.BetterThan(fourHigh))
}

func TestCompareTotalOrder(t *testing.T) {
	a := Evaluate(hand(t, "9♠ 5♦ Q♥"))
	b := Evaluate(hand(t, "9♣ 5♥ Q♦"))
	assert.Equal(t, 0, a.Compare(b))
	assert.False(t, a.BetterThan(b))

	pair := Evaluate(hand(t, "2♣ 2♦ 3♠"))
	flush := Evaluate(hand(t, "2♠ 7♠ J♠"))
	assert.Equal(t, -1, pair.Compare(flush))
	assert.Equal(t, 1, flush.Compare(pair))
}

func TestDealerQualifies(t *testing.T) {
	assert.False(t, DealerQualifies(hand(t, "2♣ 5♦ 9♥")))
	assert.False(t, DealerQualifies(hand(t, "J♣ 5♦ 9♥")))
	assert.True(t, DealerQualifies(hand(t, "2♣ 5♦ Q♥")))
	assert.True(t, DealerQualifies(hand(t, "2♣ 2♦ 3♥")))
}

func TestSettle(t *testing.T) {
	const ante = 1000
	cases := []struct {
		name     string
		player   string
		dealer   string
		kind     OutcomeKind
		bonus    int64
		returned int64
		net      int64
	}{
		{"dealer not qualified", "2♠ 3♦ 5♥", "2♣ 5♦ 9♥", OutcomeNotQualified, 0, 3000, 1000},
		{"trips win", "K♠ K♥ K♦", "2♣ 2♦ 9♥", OutcomeWin, 4000, 8000, 6000},
		{"straight flush win", "5♥ 6♥ 7♥", "Q♣ 5♦ 9♥", OutcomeWin, 5000, 9000, 7000},
		{"straight win", "5♥ 6♣ 7♥", "Q♣ 5♦ 9♥", OutcomeWin, 1000, 5000, 3000},
		{"flush win no bonus", "2♠ 7♠ J♠", "Q♣ 5♦ 9♥", OutcomeWin, 0, 4000, 2000},
		{"exact tie", "9♠ 5♦ Q♥", "9♣ 5♥ Q♦", OutcomeTie, 0, 2000, 0},
		{"dealer wins", "9♠ 5♦ Q♥", "K♣ 5♥ 2♦", OutcomeLose, 0, 0, -2000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Settle(ante, hand(t, tc.player), hand(t, tc.dealer))
			assert.Equal(t, tc.kind, s.Kind)
			assert.Equal(t, tc.bonus, s.Bonus)
			assert.Equal(t, tc.returned, s.Returned)
			assert.Equal(t, tc.net, s.Net)
		})
	}
}

func TestSettleFold(t *testing.T) {
	s := SettleFold(1000, hand(t, "K♠ K♥ K♦"), hand(t, "2♣ 5♦ 9♥"))
	assert.Equal(t, OutcomeFold, s.Kind)
	assert.Equal(t, int64(-1000), s.Net)
	assert.Equal(t, int64(0), s.Returned)
	assert.Equal(t, ThreeOfAKind, s.PlayerHand.Category)
}

func zeroShuffle() randsrc.Source { return &randsrc.Sequence{Ints: []int{0}} }

func TestSessionPlayFlow(t *testing.T) {
	s := NewSession(100000, 1000, DefaultLimits())
	require.Equal(t, PhaseBetting, s.Phase)

	s, err := Deal(s, zeroShuffle())
	require.NoError(t, err)
	assert.Equal(t, PhaseDealt, s.Phase)
	assert.Equal(t, int64(99000), s.Chips)

	_, err = SetChips(s, 5000)
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = Deal(s, zeroShuffle())
	assert.ErrorIs(t, err, ErrWrongPhase)

	// 3-4-5 straight flush against 6-7-8 straight flush.
	s, res, err := Play(s)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLose, res.Kind)
	assert.Equal(t, PhaseResult, s.Phase)
	assert.Equal(t, int64(98000), s.Chips)
	assert.Equal(t, 1, s.Hands)
	require.NotNil(t, s.Last)

	s, err = NextHand(s)
	require.NoError(t, err)
	assert.Equal(t, PhaseBetting, s.Phase)
	assert.Equal(t, [3]Card{}, s.Player)
}

func TestSessionFold(t *testing.T) {
	s, err := Deal(NewSession(100000, 2000, DefaultLimits()), randsrc.NewSeeded(5))
	require.NoError(t, err)
	s, res, err := Fold(s)
	require.NoError(t, err)
	assert.Equal(t, int64(-2000), res.Net)
	assert.Equal(t, int64(98000), s.Chips)
	assert.Equal(t, PhaseResult, s.Phase)

	_, _, err = Play(s)
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestSessionRefusalsLeaveStateUntouched(t *testing.T) {
	s := NewSession(1000, 1000, DefaultLimits())
	dealt, err := Deal(s, randsrc.NewSeeded(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), dealt.Chips)

	after, _, err := Play(dealt)
	assert.ErrorIs(t, err, ErrInsufficientChips)
	assert.Equal(t, dealt, after)

	_, _, err = Fold(dealt)
	require.NoError(t, err)

	rich := NewSession(5000, 1000, DefaultLimits())
	got, err := SetAnte(rich, 6000)
	assert.ErrorIs(t, err, ErrInsufficientChips)
	assert.Equal(t, rich, got)
}

func TestSessionClampsToLimits(t *testing.T) {
	s := NewSession(10, 0, DefaultLimits())
	assert.Equal(t, int64(1000), s.Chips)
	assert.Equal(t, int64(1000), s.Ante)

	s, err := SetChips(s, -50)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), s.Chips)

	s, err = SetChips(s, 50000)
	require.NoError(t, err)
	s, err = SetAnte(s, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), s.Ante)
	s, err = SetAnte(s, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), s.Ante)
}

func TestSessionCapsChipsAtTableLimit(t *testing.T) {
	s := NewSession(9_000_000_000_000_000_000, 3_000_000_000_000_000_000, DefaultLimits())
	assert.Equal(t, int64(1_000_000_000_000), s.Chips)
	assert.Equal(t, int64(1_000_000_000_000), s.Ante)

	s, err := SetChips(s, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000_000), s.Chips)

	open := NewSession(math.MaxInt64, math.MaxInt64, Limits{MinChips: 1000, MinAnte: 1000})
	assert.Equal(t, HardMaxChips, open.Chips)
	assert.Equal(t, HardMaxChips, open.Ante)
}

func TestSessionPlayHugeAnteStaysPositive(t *testing.T) {
	s := NewSession(math.MaxInt64, 0, Limits{MinChips: 1000, MinAnte: 1000})
	s, err := SetAnte(s, HardMaxChips/2)
	require.NoError(t, err)
	ante := s.Ante

	// Trips against a qualifying dealer pair: 2*(ante+play) plus a 4x bonus.
	s.Chips -= ante
	s.Phase = PhaseDealt
	s.Player = hand(t, "K♠ K♥ K♦")
	s.Dealer = hand(t, "2♣ 2♦ 9♠")

	s, res, err := Play(s)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, res.Kind)
	assert.Equal(t, 8*ante, res.Returned)
	assert.Equal(t, 6*ante, res.Net)
	assert.Positive(t, res.Net)
	assert.Equal(t, HardMaxChips, s.Chips)
}

func TestSessionPlayCreditsUpToMaxChips(t *testing.T) {
	lim := Limits{MinChips: 1000, MinAnte: 1000, MaxChips: 20000}
	s := NewSession(20000, 5000, lim)
	s.Chips -= s.Ante
	s.Phase = PhaseDealt
	s.Player = hand(t, "A♠ A♥ A♦")
	s.Dealer = hand(t, "Q♣ J♦ 9♠")

	s, res, err := Play(s)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), res.Net)
	assert.Equal(t, int64(20000), s.Chips)
}
