package uth

import (
	"casino/internal/cards"
	"casino/internal/fairness"
	"casino/internal/model"
	"casino/internal/repository/session_repo"
	"casino/internal/service/ledger"
	"casino/internal/service/round"
	"casino/internal/service/servicetest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	user     = int64(5)
	stranger = int64(6)
	start    = int64(10000)
)

func card(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Suit: s, Rank: r}
}

type fixture struct {
	s     *serv
	env   *servicetest.Env
	store *session_repo.Store[*model.UTHSession]
}

// newFixture - порядок карт: игрок 2, дилер 2, общие 5
func newFixture(order ...cards.Card) *fixture {
	env := servicetest.NewEnv(map[int64]int64{user: start, stranger: start})
	l := ledger.NewLedgerService(env.Wallet, env.Audit, env.Tx, zap.NewNop())
	store := session_repo.NewStore[*model.UTHSession]()
	s := NewUTHService(round.NewRunner(fairness.NewSource(), l, env.Reporter, zap.NewNop()), store, zap.NewNop()).(*serv)
	s.newDeck = func(fairness.Round) cards.Deck { return cards.Stack(order...) }
	return &fixture{s: s, env: env, store: store}
}

// boardDeck - обе стороны играют доску A K Q J 9
func boardDeck() []cards.Card {
	return []cards.Card{
		card(cards.Two, cards.Clubs), card(cards.Three, cards.Diamonds),
		card(cards.Four, cards.Hearts), card(cards.Five, cards.Clubs),
		card(cards.Ace, cards.Spades), card(cards.King, cards.Diamonds), card(cards.Queen, cards.Hearts),
		card(cards.Jack, cards.Clubs), card(cards.Nine, cards.Spades),
	}
}

func (f *fixture) deal(t *testing.T, ante, trips int64) *model.UTHResult {
	t.Helper()
	res, err := f.s.Deal(context.Background(), model.UTHDeal{UserID: user, AnteCents: ante, TripsCents: trips})
	require.NoError(t, err)
	return res
}

func (f *fixture) act(t *testing.T, id string, a model.UTHAction, mult int) *model.UTHResult {
	t.Helper()
	res, err := f.s.Act(context.Background(), model.UTHMove{UserID: user, SessionID: id, Action: a, Multiplier: mult})
	require.NoError(t, err)
	return res
}

func TestPreflopBetStraightWins(t *testing.T) {
	f := newFixture(
		card(cards.Nine, cards.Hearts), card(cards.Ten, cards.Diamonds),
		card(cards.Two, cards.Clubs), card(cards.Two, cards.Diamonds),
		card(cards.Jack, cards.Spades), card(cards.Queen, cards.Hearts), card(cards.King, cards.Clubs),
		card(cards.Four, cards.Diamonds), card(cards.Seven, cards.Spades),
	)

	res := f.deal(t, 100, 0)
	assert.Equal(t, model.UTHPreflop, res.Session.Phase)
	assert.Equal(t, int64(200), res.Round.BetCents)
	assert.Empty(t, res.Session.VisibleCommunity())
	assert.NotContains(t, string(f.env.Audit.Records()[0].Payload), "dealer")

	res = f.act(t, res.Session.ID, model.UTHBet, 4)
	st := res.Session.Settlement
	require.NotNil(t, st)

	assert.Equal(t, model.UTHShowdown, res.Session.Phase)
	assert.Equal(t, model.UTHWinnerPlayer, st.Winner)
	assert.Equal(t, cards.Straight, st.PlayerHand.Category)
	assert.True(t, st.DealerQualifies)
	assert.Equal(t, int64(800), st.PlayCents)
	assert.Equal(t, int64(200), st.AnteCents)
	assert.Equal(t, int64(200), st.BlindCents)
	assert.Equal(t, int64(1200), res.Round.PayoutCents)
	assert.NotEmpty(t, res.Round.ServerSeed)
	assert.Equal(t, start+600, f.env.Wallet.Balance(user))
	assert.Zero(t, f.store.Len())
}

func TestFoldStillPaysTrips(t *testing.T) {
	f := newFixture(
		card(cards.Five, cards.Clubs), card(cards.Five, cards.Diamonds),
		card(cards.Ace, cards.Hearts), card(cards.King, cards.Hearts),
		card(cards.Five, cards.Spades), card(cards.Nine, cards.Hearts), card(cards.Two, cards.Clubs),
		card(cards.Jack, cards.Diamonds), card(cards.Eight, cards.Spades),
	)

	res := f.deal(t, 100, 50)
	res = f.act(t, res.Session.ID, model.UTHCheck, 0)
	assert.Equal(t, model.UTHFlop, res.Session.Phase)
	assert.Len(t, res.Session.VisibleCommunity(), 3)

	res = f.act(t, res.Session.ID, model.UTHCheck, 0)
	assert.Equal(t, model.UTHRiver, res.Session.Phase)
	assert.Len(t, res.Session.VisibleCommunity(), 5)

	res = f.act(t, res.Session.ID, model.UTHFold, 0)
	assert.Equal(t, model.UTHFolded, res.Session.Phase)
	assert.Equal(t, int64(200), res.Session.Settlement.TripsCents)
	assert.Equal(t, int64(200), res.Round.PayoutCents)
	assert.Equal(t, start-50, f.env.Wallet.Balance(user))
}

func TestDealerNotQualifiedPushesAnte(t *testing.T) {
	f := newFixture(
		card(cards.Three, cards.Clubs), card(cards.Four, cards.Diamonds),
		card(cards.Ace, cards.Hearts), card(cards.King, cards.Spades),
		card(cards.Eight, cards.Spades), card(cards.Nine, cards.Diamonds), card(cards.Jack, cards.Clubs),
		card(cards.Two, cards.Hearts), card(cards.Six, cards.Clubs),
	)

	res := f.deal(t, 100, 0)
	res = f.act(t, res.Session.ID, model.UTHCheck, 0)
	res = f.act(t, res.Session.ID, model.UTHCheck, 0)
	res = f.act(t, res.Session.ID, model.UTHBet, 0)

	st := res.Session.Settlement
	assert.Equal(t, model.UTHWinnerDealer, st.Winner)
	assert.False(t, st.DealerQualifies)
	assert.Equal(t, int64(100), st.AnteCents)
	assert.Zero(t, st.BlindCents)
	assert.Zero(t, st.PlayCents)
	assert.Equal(t, start-200, f.env.Wallet.Balance(user))
}

func TestTiePushesEverything(t *testing.T) {
	f := newFixture(boardDeck()...)

	res := f.deal(t, 100, 0)
	res = f.act(t, res.Session.ID, model.UTHBet, 3)

	assert.Equal(t, model.UTHWinnerTie, res.Session.Settlement.Winner)
	assert.Equal(t, int64(500), res.Round.PayoutCents)
	assert.Equal(t, start, f.env.Wallet.Balance(user))
}

func TestInvalidActionsDoNotMutate(t *testing.T) {
	f := newFixture(boardDeck()...)
	res := f.deal(t, 100, 0)
	id := res.Session.ID

	cases := []struct {
		name   string
		action model.UTHAction
		mult   int
	}{
		{"preflop bet x2", model.UTHBet, 2},
		{"preflop bet without multiplier", model.UTHBet, 0},
		{"preflop fold", model.UTHFold, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.s.Act(context.Background(), model.UTHMove{UserID: user, SessionID: id, Action: tc.action, Multiplier: tc.mult})
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}

	got, err := f.s.Get(context.Background(), user, id)
	require.NoError(t, err)
	assert.Equal(t, model.UTHPreflop, got.Session.Phase)
	assert.Zero(t, got.Session.PlayCents)
	assert.Equal(t, start-200, got.Round.BalanceCents)
	assert.Len(t, f.env.Audit.Records(), 1)
}

func TestForeignAndFinishedSessions(t *testing.T) {
	f := newFixture(boardDeck()...)
	res := f.deal(t, 100, 0)
	id := res.Session.ID

	_, err := f.s.Act(context.Background(), model.UTHMove{UserID: stranger, SessionID: id, Action: model.UTHCheck})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = f.s.Get(context.Background(), stranger, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	f.act(t, id, model.UTHBet, 4)

	_, err = f.s.Act(context.Background(), model.UTHMove{UserID: user, SessionID: id, Action: model.UTHCheck})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestDealValidation(t *testing.T) {
	f := newFixture(boardDeck()...)

	_, err := f.s.Deal(context.Background(), model.UTHDeal{UserID: user, AnteCents: 0})
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = f.s.Deal(context.Background(), model.UTHDeal{UserID: user, AnteCents: 10, TripsCents: -1})
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = f.s.Deal(context.Background(), model.UTHDeal{UserID: user, AnteCents: start})
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Zero(t, f.store.Len())
}

func TestPayoutTables(t *testing.T) {
	assert.Equal(t, int64(50100), Blind(100, cards.RoyalFlush))
	assert.Equal(t, int64(250), Blind(100, cards.Flush))
	assert.Equal(t, int64(100), Blind(100, cards.OnePair))

	assert.Equal(t, int64(40), Trips(10, cards.ThreeOfAKind))
	assert.Equal(t, int64(90), Trips(10, cards.FullHouse))
	assert.Zero(t, Trips(10, cards.TwoPair))
}
