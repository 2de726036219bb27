package blackjack

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
	user     = int64(3)
	stranger = int64(4)
	start    = int64(10000)
)

func c(r cards.Rank) cards.Card {
	return cards.Card{Suit: cards.Spades, Rank: r}
}

type fixture struct {
	s     *serv
	env   *servicetest.Env
	store *session_repo.Store[*model.BlackjackSession]
}

// newFixture - сервис с колодой, из которой карты выходят в порядке order
func newFixture(order ...cards.Card) *fixture {
	env := servicetest.NewEnv(map[int64]int64{user: start, stranger: start})
	l := ledger.NewLedgerService(env.Wallet, env.Audit, env.Tx, zap.NewNop())
	store := session_repo.NewStore[*model.BlackjackSession]()
	s := NewBlackjackService(round.NewRunner(fairness.NewSource(), l, env.Reporter, zap.NewNop()), store, zap.NewNop()).(*serv)
	s.newDeck = func(fairness.Round) cards.Deck { return cards.Stack(order...) }
	return &fixture{s: s, env: env, store: store}
}

func (f *fixture) deal(t *testing.T, bet int64) *model.BlackjackResult {
	t.Helper()
	res, err := f.s.Deal(context.Background(), model.BlackjackDeal{UserID: user, BetCents: bet})
	require.NoError(t, err)
	return res
}

func (f *fixture) act(t *testing.T, id string, a model.BlackjackAction) *model.BlackjackResult {
	t.Helper()
	res, err := f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: id, Action: a})
	require.NoError(t, err)
	return res
}

func TestHandValue(t *testing.T) {
	v, soft := HandValue([]cards.Card{c(cards.Ace), c(cards.Six)})
	assert.Equal(t, 17, v)
	assert.True(t, soft)

	v, soft = HandValue([]cards.Card{c(cards.Ace), c(cards.Six), c(cards.Nine)})
	assert.Equal(t, 16, v)
	assert.False(t, soft)

	v, _ = HandValue([]cards.Card{c(cards.Ace), c(cards.Ace), c(cards.King)})
	assert.Equal(t, 12, v)

	assert.True(t, IsBlackjack([]cards.Card{c(cards.Ace), c(cards.Queen)}))
	assert.False(t, IsBlackjack([]cards.Card{c(cards.Seven), c(cards.Seven), c(cards.Seven)}))
}

func TestNaturalPaysThreeToTwo(t *testing.T) {
	f := newFixture(c(cards.Ace), c(cards.King), c(cards.Nine), c(cards.Seven))

	res := f.deal(t, 100)

	assert.Equal(t, model.BlackjackResolved, res.Session.Phase)
	assert.Equal(t, model.HandBlackjack, res.Session.Hands[0].Outcome)
	assert.Equal(t, int64(250), res.Round.PayoutCents)
	assert.Equal(t, start+150, f.env.Wallet.Balance(user))
	assert.NotEmpty(t, res.Round.ServerSeed)
	assert.Zero(t, f.store.Len())
}

func TestNaturalPushesAgainstDealerNatural(t *testing.T) {
	f := newFixture(c(cards.Ace), c(cards.King), c(cards.Queen), c(cards.Ace))

	res := f.deal(t, 100)

	assert.Equal(t, model.HandPush, res.Session.Hands[0].Outcome)
	assert.Equal(t, start, f.env.Wallet.Balance(user))
}

func TestHitBustAndStandFlow(t *testing.T) {
	// игрок 10+6, дилер 9+8, добор K
	f := newFixture(c(cards.Ten), c(cards.Six), c(cards.Nine), c(cards.Eight), c(cards.King))

	res := f.deal(t, 100)
	require.Equal(t, model.BlackjackPlaying, res.Session.Phase)
	assert.Equal(t, 1, f.store.Len())

	res = f.act(t, res.Session.ID, model.BlackjackHit)
	assert.Equal(t, model.BlackjackResolved, res.Session.Phase)
	assert.Equal(t, model.HandBust, res.Session.Hands[0].Outcome)
	assert.Len(t, res.Session.DealerHand, 2)
	assert.Equal(t, start-100, f.env.Wallet.Balance(user))
	assert.Zero(t, f.store.Len())
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	// игрок 10+9, дилер 10+4, дилер добирает 5
	f := newFixture(c(cards.Ten), c(cards.Nine), c(cards.Ten), c(cards.Four), c(cards.Five))

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackStand)

	v, _ := HandValue(res.Session.DealerHand)
	assert.Equal(t, 19, v)
	assert.Equal(t, model.HandPush, res.Session.Hands[0].Outcome)
	assert.Equal(t, start, f.env.Wallet.Balance(user))
}

func TestDouble(t *testing.T) {
	// игрок 6+5, дилер 10+7, добор 10
	f := newFixture(c(cards.Six), c(cards.Five), c(cards.Ten), c(cards.Seven), c(cards.Ten))

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackDouble)

	h := res.Session.Hands[0]
	assert.True(t, h.Doubled)
	assert.Equal(t, int64(200), h.BetCents)
	assert.Equal(t, model.HandWin, h.Outcome)
	assert.Equal(t, int64(100), res.Round.BetCents)
	assert.Equal(t, start+200, f.env.Wallet.Balance(user))
}

func TestSplit(t *testing.T) {
	// игрок 8+8, дилер 10+7; первая рука 8+3+10, вторая 8+10
	f := newFixture(
		c(cards.Eight), c(cards.Eight), c(cards.Ten), c(cards.Seven),
		c(cards.Three), c(cards.Ten), c(cards.Ten),
	)

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackSplit)
	require.Len(t, res.Session.Hands, 2)
	assert.Equal(t, start-200, f.env.Wallet.Balance(user))
	assert.Equal(t, 0, res.Session.Active)

	res = f.act(t, res.Session.ID, model.BlackjackHit)
	assert.Equal(t, 1, res.Session.Active)

	res = f.act(t, res.Session.ID, model.BlackjackStand)
	require.Equal(t, model.BlackjackResolved, res.Session.Phase)
	assert.Equal(t, model.HandWin, res.Session.Hands[0].Outcome)
	assert.Equal(t, model.HandWin, res.Session.Hands[1].Outcome)
	assert.Equal(t, start+200, f.env.Wallet.Balance(user))
}

func TestSplitTwentyOneIsNotNatural(t *testing.T) {
	// сплит тузов: каждая рука получает одну карту и закрывается
	f := newFixture(
		c(cards.Ace), c(cards.Ace), c(cards.Ten), c(cards.Nine),
		c(cards.King), c(cards.Five),
	)

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackSplit)

	require.Equal(t, model.BlackjackResolved, res.Session.Phase)
	assert.Equal(t, model.HandWin, res.Session.Hands[0].Outcome)
	assert.Equal(t, int64(200), res.Session.Hands[0].PayoutCents)
	assert.Equal(t, model.HandLoss, res.Session.Hands[1].Outcome)
}

func TestSurrender(t *testing.T) {
	f := newFixture(c(cards.Ten), c(cards.Six), c(cards.Ten), c(cards.Nine))

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackSurrender)

	assert.Equal(t, model.HandSurrender, res.Session.Hands[0].Outcome)
	assert.Equal(t, start-50, f.env.Wallet.Balance(user))
}

func TestSurrenderOnlyFirstAction(t *testing.T) {
	f := newFixture(c(cards.Two), c(cards.Three), c(cards.Ten), c(cards.Nine), c(cards.Four))

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackHit)

	_, err := f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: res.Session.ID, Action: model.BlackjackSurrender})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestInsuranceAgainstDealerBlackjack(t *testing.T) {
	f := newFixture(c(cards.Ten), c(cards.Nine), c(cards.Ace), c(cards.King))

	res := f.deal(t, 100)
	require.Equal(t, model.BlackjackInsurancePrompt, res.Session.Phase)
	assert.Empty(t, res.Round.ServerSeed)

	res = f.act(t, res.Session.ID, model.BlackjackInsure)
	assert.Equal(t, model.BlackjackResolved, res.Session.Phase)
	assert.Equal(t, model.HandLoss, res.Session.Hands[0].Outcome)
	assert.Equal(t, int64(150), res.Session.InsurancePayout)
	// ставка 100 и страховка 50 проиграны, страховка вернула 150
	assert.Equal(t, start, f.env.Wallet.Balance(user))
}

func TestDeclineInsuranceContinues(t *testing.T) {
	f := newFixture(c(cards.Ten), c(cards.Nine), c(cards.Ace), c(cards.Six))

	res := f.deal(t, 100)
	res = f.act(t, res.Session.ID, model.BlackjackDecline)

	assert.Equal(t, model.BlackjackPlaying, res.Session.Phase)
	assert.Zero(t, res.Session.InsuranceCents)
}

func TestActionRejectedInWrongPhase(t *testing.T) {
	f := newFixture(c(cards.Ten), c(cards.Nine), c(cards.Ace), c(cards.Six))

	res := f.deal(t, 100)
	_, err := f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: res.Session.ID, Action: model.BlackjackHit})
	assert.ErrorIs(t, err, model.ErrValidation)

	got, err := f.s.Get(context.Background(), user, res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackInsurancePrompt, got.Session.Phase)
}

func TestForeignAndFinishedSessions(t *testing.T) {
	f := newFixture(c(cards.Ten), c(cards.Six), c(cards.Nine), c(cards.Eight), c(cards.King))

	res := f.deal(t, 100)
	id := res.Session.ID

	_, err := f.s.Act(context.Background(), model.BlackjackMove{UserID: stranger, SessionID: id, Action: model.BlackjackStand})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Equal(t, start, f.env.Wallet.Balance(stranger))

	f.act(t, id, model.BlackjackStand)

	_, err = f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: id, Action: model.BlackjackHit})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	_, err = f.s.Get(context.Background(), user, id)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestFailedSettleKeepsSession(t *testing.T) {
	f := newFixture(c(cards.Six), c(cards.Five), c(cards.Ten), c(cards.Seven), c(cards.Ten))

	res := f.deal(t, 9000)
	f.env.Wallet.FailCredit = servicetest.ErrBoom

	// добор 10 дает 21 и выигрыш, но начисление падает
	_, err := f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: res.Session.ID, Action: model.BlackjackHit})
	require.ErrorIs(t, err, servicetest.ErrBoom)

	got, err := f.s.Get(context.Background(), user, res.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BlackjackPlaying, got.Session.Phase)
	assert.Len(t, got.Session.Deck, 1)

	// двойной ставки не хватает средств, сессия не меняется
	f.env.Wallet.FailCredit = nil
	_, err = f.s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: res.Session.ID, Action: model.BlackjackDouble})
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	got, err = f.s.Get(context.Background(), user, res.Session.ID)
	require.NoError(t, err)
	assert.False(t, got.Session.Hands[0].Doubled)
}

func TestLedgerConservation(t *testing.T) {
	for i := 0; i < 50; i++ {
		env := servicetest.NewEnv(map[int64]int64{user: start})
		l := ledger.NewLedgerService(env.Wallet, env.Audit, env.Tx, zap.NewNop())
		s := NewBlackjackService(round.NewRunner(fairness.NewSource(), l, env.Reporter, zap.NewNop()),
			session_repo.NewStore[*model.BlackjackSession](), zap.NewNop())

		res, err := s.Deal(context.Background(), model.BlackjackDeal{UserID: user, BetCents: 100})
		require.NoError(t, err)
		for res.Session.Phase != model.BlackjackResolved {
			a := model.BlackjackStand
			if res.Session.Phase == model.BlackjackInsurancePrompt {
				a = model.BlackjackDecline
			}
			res, err = s.Act(context.Background(), model.BlackjackMove{UserID: user, SessionID: res.Session.ID, Action: a})
			require.NoError(t, err)
		}

		var bets, payouts int64
		finals := 0
		for _, rec := range env.Audit.Records() {
			bets += rec.BetCents
			payouts += rec.PayoutCents
			if rec.Final {
				finals++
			}
		}
		assert.Equal(t, 1, finals)
		assert.Equal(t, start-bets+payouts, env.Wallet.Balance(user))
		assert.Equal(t, res.Round.BalanceCents, env.Wallet.Balance(user))
	}
}
