// Package locale renders user-facing labels and amounts in the table's language.
package locale

import (
	"strings"

	"casino-sim/internal/baccarat"
	"casino-sim/internal/threecard"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.Japanese, language.English}

var matcher = language.NewMatcher(supported)

type Locale struct {
	tag language.Tag
	p   *message.Printer
}

// New matches lang ("ja", "en-US", "ja-JP", ...) against the supported
// languages. Unknown or empty input yields Japanese.
func New(lang string) Locale {
	tag := language.Japanese
	if t, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return Locale{tag: tag, p: message.NewPrinter(tag)}
}

func (l Locale) Tag() language.Tag { return l.tag }

func (l Locale) Lang() string { return l.tag.String() }

// Number formats n with the locale's digit grouping.
func (l Locale) Number(n int64) string {
	return l.p.Sprintf("%d", n)
}

func (l Locale) Target(t baccarat.BetTarget) string {
	if t == baccarat.TargetBanker {
		return l.p.Sprintf("Banker")
	}
	return l.p.Sprintf("Player")
}

func (l Locale) Result(r baccarat.GameResult) string {
	switch r {
	case baccarat.ResultBanker:
		return l.p.Sprintf("Banker")
	case baccarat.ResultPlayer:
		return l.p.Sprintf("Player")
	}
	return l.p.Sprintf("Tie")
}

func (l Locale) ParseTarget(label string) (baccarat.BetTarget, bool) {
	for _, t := range []baccarat.BetTarget{baccarat.TargetBanker, baccarat.TargetPlayer} {
		if l.Target(t) == label {
			return t, true
		}
	}
	return "", false
}

func (l Locale) ParseResult(label string) (baccarat.GameResult, bool) {
	for _, r := range []baccarat.GameResult{baccarat.ResultBanker, baccarat.ResultPlayer, baccarat.ResultTie} {
		if l.Result(r) == label {
			return r, true
		}
	}
	return "", false
}

var strategyKeys = map[baccarat.StrategyID]string{
	baccarat.StrategyBankerOnly:   "Banker only",
	baccarat.StrategyPlayerOnly:   "Player only",
	baccarat.StrategyFollowWinner: "Follow the last winner",
	baccarat.StrategyAlternate:    "Alternate player and banker",
	baccarat.StrategyPPBB:         "PP→BB (two each)",
}

func (l Locale) Strategy(id baccarat.StrategyID) string {
	key, ok := strategyKeys[id]
	if !ok {
		return string(id)
	}
	return l.p.Sprintf(key)
}

// ExportHeaders are the column titles of the round history export.
func (l Locale) ExportHeaders() []string {
	keys := []string{"Round", "Target", "Bet", "Result", "Balance before", "Balance after", "Profit/loss", "Action"}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = l.p.Sprintf(k)
	}
	return out
}

// DescribeAction implements baccarat.Describer.
func (l Locale) DescribeAction(kind baccarat.ActionKind, amount, nextBet int64, lossCap int) string {
	switch kind {
	case baccarat.ActionTie:
		return l.p.Sprintf("Tie (push)")
	case baccarat.ActionWin:
		return l.p.Sprintf("Win +%d", amount)
	case baccarat.ActionLossReset:
		return l.p.Sprintf("Loss -%d (reset after %d losses)", amount, lossCap)
	}
	return l.p.Sprintf("Loss -%d (next %d)", amount, nextBet)
}

var categoryKeys = map[threecard.Category]string{
	threecard.HighCard:      "High card",
	threecard.OnePair:       "One pair",
	threecard.Flush:         "Flush",
	threecard.Straight:      "Straight",
	threecard.ThreeOfAKind:  "Three of a kind",
	threecard.StraightFlush: "Straight flush",
}

func (l Locale) Category(c threecard.Category) string {
	return l.p.Sprintf(categoryKeys[c])
}

// PhasePrompt is the table prompt shown while waiting in a phase.
func (l Locale) PhasePrompt(p threecard.Phase, handsPlayed int) string {
	switch p {
	case threecard.PhaseDealt:
		return l.p.Sprintf("Play or fold")
	case threecard.PhaseResult:
		return l.p.Sprintf("Start the next hand")
	case threecard.PhaseBetting:
		if handsPlayed > 0 {
			return l.p.Sprintf("Start the next hand")
		}
	}
	return l.p.Sprintf("Set an ante and deal")
}

func (l Locale) NotEnoughChips() string {
	return l.p.Sprintf("Not enough chips")
}

// Outcome renders the result line of a settled hand.
func (l Locale) Outcome(s threecard.Settlement) string {
	player := l.Category(s.PlayerHand.Category)
	dealer := l.Category(s.DealerHand.Category)
	switch s.Kind {
	case threecard.OutcomeFold:
		return l.p.Sprintf("Folded. Lost %d.", s.Ante)
	case threecard.OutcomeNotQualified:
		return l.p.Sprintf("Dealer does not qualify. Ante pays (+%d)", s.Net)
	case threecard.OutcomeWin:
		if s.Bonus > 0 {
			return l.p.Sprintf("Win! %s vs %s (+%d, bonus included)", player, dealer, s.Net)
		}
		return l.p.Sprintf("Win! %s vs %s (+%d)", player, dealer, s.Net)
	case threecard.OutcomeTie:
		return l.p.Sprintf("Push. Bets returned (%s)", player)
	}
	return l.p.Sprintf("Lost... %s vs %s (-%d)", player, dealer, -s.Net)
}
