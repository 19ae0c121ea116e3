package table

import (
	"time"

	"casino-sim/internal/threecard"
)

type CreateRequest struct {
	Chips *int64
	Ante  *int64
	Lang  string
}

// TableResponse is what a player at the table may see. Dealer cards stay
// hidden until the hand is settled.
type TableResponse struct {
	TableID     string          `json:"table_id"`
	Lang        string          `json:"lang"`
	Phase       threecard.Phase `json:"phase"`
	Chips       int64           `json:"chips"`
	Ante        int64           `json:"ante"`
	MinChips    int64           `json:"min_chips"`
	MinAnte     int64           `json:"min_ante"`
	HandsPlayed int             `json:"hands_played"`
	CanDeal     bool            `json:"can_deal"`
	Prompt      string          `json:"prompt"`
	PlayerCards []string        `json:"player_cards,omitempty"`
	DealerCards []string        `json:"dealer_cards,omitempty"`
	PlayerHand  *HandView       `json:"player_hand,omitempty"`
	DealerHand  *HandView       `json:"dealer_hand,omitempty"`
	Result      *ResultView     `json:"result,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type HandView struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

type ResultView struct {
	Kind            threecard.OutcomeKind `json:"kind"`
	Ante            int64                 `json:"ante"`
	PlayBet         int64                 `json:"play_bet"`
	Bonus           int64                 `json:"bonus"`
	Returned        int64                 `json:"returned"`
	Net             int64                 `json:"net"`
	DealerQualified bool                  `json:"dealer_qualified"`
	Message         string                `json:"message"`
}
