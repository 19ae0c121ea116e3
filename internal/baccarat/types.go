// Package baccarat simulates baccarat outcomes and a capped Martingale
// betting progression over many rounds.
package baccarat

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown_strategy")
	ErrInvalidConfig   = errors.New("invalid_config")
)

type GameResult string

const (
	ResultBanker GameResult = "banker"
	ResultPlayer GameResult = "player"
	ResultTie    GameResult = "tie"
)

type BetTarget string

const (
	TargetBanker BetTarget = "banker"
	TargetPlayer BetTarget = "player"
)

type StrategyID string

const (
	StrategyBankerOnly   StrategyID = "bankerOnly"
	StrategyPlayerOnly   StrategyID = "playerOnly"
	StrategyFollowWinner StrategyID = "followWinner"
	StrategyAlternate    StrategyID = "alternate"
	StrategyPPBB         StrategyID = "ppbb"
)

// Strategies lists every strategy in display order.
var Strategies = []StrategyID{
	StrategyBankerOnly,
	StrategyPlayerOnly,
	StrategyFollowWinner,
	StrategyAlternate,
	StrategyPPBB,
}

func ParseStrategy(s string) (StrategyID, error) {
	id := StrategyID(s)
	if _, ok := selectors[id]; !ok {
		return "", ErrUnknownStrategy
	}
	return id, nil
}

type ActionKind string

const (
	ActionTie       ActionKind = "tie"
	ActionWin       ActionKind = "win"
	ActionLoss      ActionKind = "loss"
	ActionLossReset ActionKind = "loss_reset"
)

// RoundRecord is one completed round. Records are never mutated after they
// are appended to a Ledger. Amount is the payout on a win and the stake lost
// on a loss.
type RoundRecord struct {
	Round         int        `json:"round"`
	Bet           int64      `json:"bet"`
	Target        BetTarget  `json:"bet_target"`
	Result        GameResult `json:"result"`
	BalanceBefore int64      `json:"balance_before"`
	BalanceAfter  int64      `json:"balance_after"`
	Kind          ActionKind `json:"action_kind"`
	Amount        int64      `json:"amount"`
	NextBet       int64      `json:"next_bet"`
	Action        string     `json:"action"`
}

func (r RoundRecord) Delta() int64 {
	return r.BalanceAfter - r.BalanceBefore
}

type Summary struct {
	FinalBalance int64 `json:"final_balance"`
	Profit       int64 `json:"profit"`
	TotalRounds  int   `json:"total_rounds"`
	Wins         int   `json:"wins"`
	Losses       int   `json:"losses"`
	Ties         int   `json:"ties"`
}

// Describer renders the human-readable action tag of a round.
type Describer interface {
	DescribeAction(kind ActionKind, amount, nextBet int64, lossCap int) string
}
