package session_repo

import (
	"casino/internal/model"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	id      string
	userID  int64
	counter int
	updated time.Time
}

func (f *fakeSession) SessionID() string       { return f.id }
func (f *fakeSession) OwnerID() int64          { return f.userID }
func (f *fakeSession) LastActivity() time.Time { return f.updated }

func TestAcquireRejectsForeignAndMissing(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "a", userID: 1, updated: time.Now()}))

	_, err := s.Acquire(context.Background(), "a", 2)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	_, err = s.Acquire(context.Background(), "b", 1)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	lease, err := s.Acquire(context.Background(), "a", 1)
	require.NoError(t, err, "foreign attempt must not leave the session locked")
	lease.Release()
}

func TestCreateDuplicate(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "a", userID: 1}))
	assert.ErrorIs(t, s.Create(&fakeSession{id: "a", userID: 1}), model.ErrInternal)
}

func TestDeletedSessionIsGone(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "a", userID: 1}))

	lease, err := s.Acquire(context.Background(), "a", 1)
	require.NoError(t, err)
	lease.Delete()
	lease.Release()
	lease.Release()

	_, err = s.Acquire(context.Background(), "a", 1)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Zero(t, s.Len())
}

func TestAcquireSerializesWriters(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "a", userID: 1}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lease, err := s.Acquire(context.Background(), "a", 1)
			if !assert.NoError(t, err) {
				return
			}
			defer lease.Release()

			cur := *lease.Session()
			cur.counter++
			lease.Save(&cur)
		}()
	}
	wg.Wait()

	lease, err := s.Acquire(context.Background(), "a", 1)
	require.NoError(t, err)
	defer lease.Release()
	assert.Equal(t, 50, lease.Session().counter)
}

func TestAcquireHonorsContext(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "a", userID: 1}))

	held, err := s.Acquire(context.Background(), "a", 1)
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = s.Acquire(ctx, "a", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore[*fakeSession]()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Create(&fakeSession{id: "old", userID: 1, updated: now.Add(-time.Hour)}))
	require.NoError(t, s.Create(&fakeSession{id: "fresh", userID: 1, updated: now.Add(-time.Minute)}))
	require.NoError(t, s.Create(&fakeSession{id: "busy", userID: 1, updated: now.Add(-time.Hour)}))

	busy, err := s.Acquire(context.Background(), "busy", 1)
	require.NoError(t, err)

	expired := s.Sweep(30 * time.Minute)
	require.Len(t, expired, 1)
	assert.Equal(t, "old", expired[0].id)
	assert.Equal(t, 2, s.Len())

	busy.Release()
	_, err = s.Acquire(context.Background(), "old", 1)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRunSweeperStopsOnCancel(t *testing.T) {
	s := NewStore[*fakeSession]()
	require.NoError(t, s.Create(&fakeSession{id: "old", userID: 1, updated: time.Now().Add(-time.Hour)}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunSweeper(ctx, model.GameBlackjack, time.Millisecond, time.Minute, zap.NewNop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
