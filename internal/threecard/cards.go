package threecard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"casino-sim/internal/randsrc"
)

var (
	ErrDeckEmpty   = errors.New("deck_empty")
	ErrInvalidCard = errors.New("invalid_card")
)

type Suit int

type Rank int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

var suitSymbols = map[Suit]string{Spades: "♠", Hearts: "♥", Diamonds: "♦", Clubs: "♣"}

var rankSymbols = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

func (s Suit) String() string { return suitSymbols[s] }

func (r Rank) String() string { return rankSymbols[r] }

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCard(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard accepts "A♠", "10♥", "Td" or "qs" style notation.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, ErrInvalidCard
	}
	var suit Suit
	var rankPart string
	found := false
	for st, sym := range suitSymbols {
		if strings.HasSuffix(s, sym) {
			suit, rankPart, found = st, strings.TrimSuffix(s, sym), true
			break
		}
	}
	if !found {
		letters := map[byte]Suit{'s': Spades, 'h': Hearts, 'd': Diamonds, 'c': Clubs}
		st, ok := letters[strings.ToLower(s[len(s)-1:])[0]]
		if !ok {
			return Card{}, fmt.Errorf("card %q: %w", s, ErrInvalidCard)
		}
		suit, rankPart = st, s[:len(s)-1]
	}
	rankPart = strings.ToUpper(rankPart)
	if rankPart == "T" {
		rankPart = "10"
	}
	for r, sym := range rankSymbols {
		if sym == rankPart {
			return Card{Rank: r, Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("card %q: %w", s, ErrInvalidCard)
}

// ParseHand parses exactly three space separated cards.
func ParseHand(s string) ([3]Card, error) {
	var hand [3]Card
	parts := strings.Fields(s)
	if len(parts) != len(hand) {
		return hand, fmt.Errorf("hand %q needs 3 cards: %w", s, ErrInvalidCard)
	}
	for i, p := range parts {
		c, err := ParseCard(p)
		if err != nil {
			return hand, err
		}
		hand[i] = c
	}
	return hand, nil
}

type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards in suit-major order: ♠ ♥ ♦ ♣, each 2 through A.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Spades; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle applies a Fisher–Yates permutation, walking from the last index down.
func (d *Deck) Shuffle(src randsrc.Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *Deck) Len() int { return len(d.cards) }

// DealHands deals three cards to the player, then three to the dealer.
func (d *Deck) DealHands() (player, dealer [3]Card, err error) {
	for i := range player {
		if player[i], err = d.Deal(); err != nil {
			return player, dealer, err
		}
	}
	for i := range dealer {
		if dealer[i], err = d.Deal(); err != nil {
			return player, dealer, err
		}
	}
	return player, dealer, nil
}
