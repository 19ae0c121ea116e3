package baccarat

// Controller owns the bankroll state of one run. It is not safe for
// concurrent use and does not outlive the run that created it.
type Controller struct {
	cfg        Config
	balance    int64
	currentBet int64
	losses     int
	lastWinner BetTarget
}

func NewController(cfg Config) *Controller {
	return &Controller{
		cfg:        cfg,
		balance:    cfg.InitialBalance,
		currentBet: cfg.MinBet,
	}
}

func (c *Controller) Balance() int64 {
	return c.balance
}

func (c *Controller) CurrentBet() int64 {
	return c.currentBet
}

func (c *Controller) ConsecutiveLosses() int {
	return c.losses
}

func (c *Controller) LastWinner() BetTarget {
	return c.lastWinner
}

// CanBet reports whether the bankroll covers the next required bet.
// An empty bankroll can never bet, even after the progression shrank the
// stake to zero.
func (c *Controller) CanBet() bool {
	return c.balance > 0 && c.balance >= c.currentBet
}

// Target returns the bet target for the given round under the configured strategy.
func (c *Controller) Target(round int) BetTarget {
	t, err := SelectTarget(c.cfg.Strategy, round, c.lastWinner)
	if err != nil {
		return TargetBanker
	}
	return t
}

// Apply settles one round and returns its record without the rendered
// action text.
func (c *Controller) Apply(round int, target BetTarget, result GameResult) RoundRecord {
	stake := min(c.currentBet, c.balance)
	rec := RoundRecord{
		Round:         round,
		Bet:           stake,
		Target:        target,
		Result:        result,
		BalanceBefore: c.balance,
	}

	switch {
	case result == ResultTie:
		rec.Kind = ActionTie
	case BetTarget(result) == target:
		c.lastWinner = BetTarget(result)
		payout := stake
		if target == TargetBanker {
			payout = bankerPayout(stake, c.cfg.CommissionBps)
		}
		c.balance += payout
		c.losses = 0
		c.currentBet = c.cfg.MinBet
		rec.Kind = ActionWin
		rec.Amount = payout
	default:
		c.lastWinner = BetTarget(result)
		c.balance -= stake
		c.losses++
		rec.Amount = stake
		if c.losses >= c.cfg.MaxConsecutiveLosses {
			c.currentBet = c.cfg.MinBet
			c.losses = 0
			rec.Kind = ActionLossReset
		} else {
			c.currentBet = min(c.currentBet*2, c.balance)
			rec.Kind = ActionLoss
		}
	}

	rec.BalanceAfter = c.balance
	rec.NextBet = c.currentBet
	return rec
}

// bankerPayout is floor(stake*(10000-bps)/10000) without forming the full
// product, so it holds for any non-negative stake.
func bankerPayout(stake, bps int64) int64 {
	keep := bpsScale - bps
	return stake/bpsScale*keep + stake%bpsScale*keep/bpsScale
}
