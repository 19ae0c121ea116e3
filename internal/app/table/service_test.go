package table

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"casino-sim/internal/config"
	"casino-sim/internal/randsrc"
	"casino-sim/internal/store"
	"casino-sim/internal/threecard"
)

// With every shuffle draw at zero the player gets 3♠4♠5♠ and the dealer
// 6♠7♠8♠, so a played hand always loses.
func newTestService() *Service {
	cfg := config.PokerConfig{StartingChips: 100000, MinChips: 1000, DefaultAnte: 1000, MinAnte: 1000}
	return NewService(store.New(time.Hour), cfg, "en", &randsrc.Sequence{Ints: []int{0}})
}

func int64p(v int64) *int64 { return &v }

func TestCreateDefaultsAndClamps(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name      string
		req       CreateRequest
		wantChips int64
		wantAnte  int64
	}{
		{name: "defaults", req: CreateRequest{}, wantChips: 100000, wantAnte: 1000},
		{name: "explicit", req: CreateRequest{Chips: int64p(50000), Ante: int64p(5000)}, wantChips: 50000, wantAnte: 5000},
		{name: "below minimum", req: CreateRequest{Chips: int64p(10), Ante: int64p(-5)}, wantChips: 1000, wantAnte: 1000},
		{name: "above table limit", req: CreateRequest{Chips: int64p(9_000_000_000_000_000_000), Ante: int64p(3_000_000_000_000_000_000)}, wantChips: threecard.HardMaxChips, wantAnte: threecard.HardMaxChips},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if resp.Chips != tt.wantChips || resp.Ante != tt.wantAnte {
				t.Fatalf("chips/ante = %d/%d, want %d/%d", resp.Chips, resp.Ante, tt.wantChips, tt.wantAnte)
			}
			if resp.Phase != threecard.PhaseBetting || !resp.CanDeal {
				t.Fatalf("phase = %s can_deal = %v", resp.Phase, resp.CanDeal)
			}
			if resp.PlayerCards != nil || resp.DealerCards != nil {
				t.Fatal("no cards should be visible before the deal")
			}
		})
	}

	if _, err := svc.Create(context.Background(), CreateRequest{Chips: int64p(1000), Ante: int64p(5000)}); !errors.Is(err, ErrInsufficientChips) {
		t.Fatalf("expected ErrInsufficientChips, got %v", err)
	}
}

func TestPlayHandFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateRequest{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.TableID

	dealt, err := svc.Deal(ctx, id)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if dealt.Phase != threecard.PhaseDealt || dealt.Chips != 99000 {
		t.Fatalf("after deal phase=%s chips=%d", dealt.Phase, dealt.Chips)
	}
	if !slices.Equal(dealt.PlayerCards, []string{"3♠", "4♠", "5♠"}) {
		t.Fatalf("player cards = %v", dealt.PlayerCards)
	}
	if dealt.DealerCards != nil || dealt.DealerHand != nil {
		t.Fatal("dealer cards must stay hidden until settlement")
	}
	if dealt.PlayerHand == nil || dealt.PlayerHand.Name != "Straight flush" {
		t.Fatalf("player hand = %+v", dealt.PlayerHand)
	}

	played, err := svc.Play(ctx, id)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if played.Phase != threecard.PhaseResult || played.Chips != 98000 {
		t.Fatalf("after play phase=%s chips=%d", played.Phase, played.Chips)
	}
	if played.Result == nil || played.Result.Kind != threecard.OutcomeLose || played.Result.Net != -2000 {
		t.Fatalf("result = %+v", played.Result)
	}
	if !slices.Equal(played.DealerCards, []string{"6♠", "7♠", "8♠"}) {
		t.Fatalf("dealer cards = %v", played.DealerCards)
	}
	if played.Result.Message == "" || played.HandsPlayed != 1 {
		t.Fatalf("message=%q hands=%d", played.Result.Message, played.HandsPlayed)
	}

	next, err := svc.Next(ctx, id)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if next.Phase != threecard.PhaseBetting || next.Prompt != "Start the next hand" {
		t.Fatalf("after next phase=%s prompt=%q", next.Phase, next.Prompt)
	}
}

func TestFoldForfeitsAnte(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, CreateRequest{Ante: int64p(3000)})
	if _, err := svc.Deal(ctx, created.TableID); err != nil {
		t.Fatalf("deal: %v", err)
	}
	folded, err := svc.Fold(ctx, created.TableID)
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if folded.Chips != 97000 || folded.Result.Kind != threecard.OutcomeFold || folded.Result.Net != -3000 {
		t.Fatalf("chips=%d result=%+v", folded.Chips, folded.Result)
	}
}

func TestRefusedActionsLeaveTableUnchanged(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, CreateRequest{})
	id := created.TableID

	if _, err := svc.Play(ctx, id); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("play before deal: %v", err)
	}
	if msg := svc.RefusalMessage(id, ErrWrongPhase); msg != "Set an ante and deal" {
		t.Fatalf("wrong phase message = %q", msg)
	}

	_, err := svc.SetAnte(ctx, id, 200000)
	if !errors.Is(err, ErrInsufficientChips) {
		t.Fatalf("oversized ante: %v", err)
	}
	if msg := svc.RefusalMessage(id, err); msg != "Not enough chips" {
		t.Fatalf("insufficient message = %q", msg)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Ante != 1000 || got.Chips != 100000 || got.Phase != threecard.PhaseBetting {
		t.Fatalf("table changed: %+v", got)
	}

	if _, err := svc.Deal(ctx, id); err != nil {
		t.Fatalf("deal: %v", err)
	}
	if _, err := svc.SetChips(ctx, id, 5000); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("set chips mid-hand: %v", err)
	}
}

func TestSetChipsAndAnte(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, _ := svc.Create(ctx, CreateRequest{})

	resp, err := svc.SetChips(ctx, created.TableID, 20)
	if err != nil {
		t.Fatalf("set chips: %v", err)
	}
	if resp.Chips != 1000 {
		t.Fatalf("chips = %d, want clamp to 1000", resp.Chips)
	}
	resp, err = svc.SetAnte(ctx, created.TableID, 0)
	if err != nil {
		t.Fatalf("set ante: %v", err)
	}
	if resp.Ante != 1000 {
		t.Fatalf("ante = %d, want clamp to 1000", resp.Ante)
	}

	capped := NewService(store.New(time.Hour), config.PokerConfig{MinChips: 1000, MinAnte: 1000, MaxChips: 250000}, "en", &randsrc.Sequence{Ints: []int{0}})
	tbl, _ := capped.Create(ctx, CreateRequest{})
	resp, err = capped.SetChips(ctx, tbl.TableID, 9_000_000_000_000_000_000)
	if err != nil {
		t.Fatalf("set chips: %v", err)
	}
	if resp.Chips != 250000 {
		t.Fatalf("chips = %d, want clamp to 250000", resp.Chips)
	}
}

func TestUnknownTable(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.Deal(context.Background(), "nope"); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("deal: %v", err)
	}
	if _, err := svc.Deal(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("deal empty id: %v", err)
	}
	if msg := svc.RefusalMessage("nope", ErrWrongPhase); msg != "" {
		t.Fatalf("message for unknown table = %q", msg)
	}
}
