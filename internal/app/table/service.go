package table

import (
	"context"
	"errors"

	"casino-sim/internal/config"
	"casino-sim/internal/locale"
	"casino-sim/internal/randsrc"
	"casino-sim/internal/store"
	"casino-sim/internal/threecard"

	"github.com/rs/zerolog/log"
)

type Service struct {
	store *store.Store
	cfg   config.PokerConfig
	lang  string
	src   randsrc.Source
}

func NewService(st *store.Store, cfg config.PokerConfig, lang string, src randsrc.Source) *Service {
	return &Service{store: st, cfg: cfg, lang: lang, src: src}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*TableResponse, error) {
	chips, ante := s.cfg.StartingChips, s.cfg.DefaultAnte
	if req.Chips != nil {
		chips = *req.Chips
	}
	if req.Ante != nil {
		ante = *req.Ante
	}
	lang := req.Lang
	if lang == "" {
		lang = s.lang
	}
	loc := locale.New(lang)
	sess := threecard.NewSession(chips, ante, s.cfg.Limits())
	if sess.Ante > sess.Chips {
		return nil, ErrInsufficientChips
	}
	t := s.store.CreateTable(loc.Lang(), sess)
	log.Info().Str("table_id", t.ID).Int64("chips", sess.Chips).Int64("ante", sess.Ante).Msg("poker table opened")
	return view(t), nil
}

func (s *Service) Get(ctx context.Context, id string) (*TableResponse, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	t, err := s.store.GetTable(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}
	return view(t), nil
}

func (s *Service) SetChips(ctx context.Context, id string, chips int64) (*TableResponse, error) {
	return s.update(id, "set_chips", func(sess threecard.Session) (threecard.Session, error) {
		return threecard.SetChips(sess, chips)
	})
}

func (s *Service) SetAnte(ctx context.Context, id string, ante int64) (*TableResponse, error) {
	return s.update(id, "set_ante", func(sess threecard.Session) (threecard.Session, error) {
		return threecard.SetAnte(sess, ante)
	})
}

func (s *Service) Deal(ctx context.Context, id string) (*TableResponse, error) {
	return s.update(id, "deal", func(sess threecard.Session) (threecard.Session, error) {
		return threecard.Deal(sess, s.src)
	})
}

func (s *Service) Fold(ctx context.Context, id string) (*TableResponse, error) {
	return s.update(id, "fold", func(sess threecard.Session) (threecard.Session, error) {
		next, _, err := threecard.Fold(sess)
		return next, err
	})
}

func (s *Service) Play(ctx context.Context, id string) (*TableResponse, error) {
	return s.update(id, "play", func(sess threecard.Session) (threecard.Session, error) {
		next, _, err := threecard.Play(sess)
		return next, err
	})
}

func (s *Service) Next(ctx context.Context, id string) (*TableResponse, error) {
	return s.update(id, "next", threecard.NextHand)
}

// RefusalMessage is the localized text for a refused table action, or "" when
// err is not a refusal.
func (s *Service) RefusalMessage(id string, err error) string {
	t, gerr := s.store.GetTable(id)
	if gerr != nil {
		return ""
	}
	loc := locale.New(t.Locale)
	switch {
	case errors.Is(err, ErrInsufficientChips):
		return loc.NotEnoughChips()
	case errors.Is(err, ErrWrongPhase):
		return loc.PhasePrompt(t.Session.Phase, t.Session.Hands)
	}
	return ""
}

func (s *Service) update(id, action string, fn func(threecard.Session) (threecard.Session, error)) (*TableResponse, error) {
	if id == "" {
		return nil, ErrInvalidRequest
	}
	t, err := s.store.UpdateTable(id, fn)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		log.Debug().Err(err).Str("table_id", id).Str("action", action).Msg("table action refused")
		return nil, err
	}
	ev := log.Info().Str("table_id", id).Str("action", action).Str("phase", string(t.Session.Phase)).Int64("chips", t.Session.Chips)
	if last := t.Session.Last; last != nil && (action == "play" || action == "fold") {
		ev = ev.Str("outcome", string(last.Kind)).Int64("net", last.Net)
	}
	ev.Msg("table updated")
	return view(t), nil
}

func view(t store.Table) *TableResponse {
	loc := locale.New(t.Locale)
	sess := t.Session
	resp := &TableResponse{
		TableID:     t.ID,
		Lang:        t.Locale,
		Phase:       sess.Phase,
		Chips:       sess.Chips,
		Ante:        sess.Ante,
		MinChips:    sess.Limits.MinChips,
		MinAnte:     sess.Limits.MinAnte,
		HandsPlayed: sess.Hands,
		CanDeal:     sess.Phase == threecard.PhaseBetting && sess.Ante <= sess.Chips,
		Prompt:      loc.PhasePrompt(sess.Phase, sess.Hands),
		UpdatedAt:   t.UpdatedAt,
	}
	if sess.Phase == threecard.PhaseBetting {
		return resp
	}
	resp.PlayerCards = cardStrings(sess.Player)
	resp.PlayerHand = handView(loc, threecard.Evaluate(sess.Player))
	if sess.Phase == threecard.PhaseResult {
		resp.DealerCards = cardStrings(sess.Dealer)
		resp.DealerHand = handView(loc, threecard.Evaluate(sess.Dealer))
		if last := sess.Last; last != nil {
			resp.Result = &ResultView{
				Kind:            last.Kind,
				Ante:            last.Ante,
				PlayBet:         last.PlayBet,
				Bonus:           last.Bonus,
				Returned:        last.Returned,
				Net:             last.Net,
				DealerQualified: last.DealerQualified,
				Message:         loc.Outcome(*last),
			}
		}
	}
	return resp
}

func cardStrings(cards [3]threecard.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func handView(loc locale.Locale, h threecard.HandRank) *HandView {
	return &HandView{Category: h.Category.String(), Name: loc.Category(h.Category), Value: h.Value}
}
