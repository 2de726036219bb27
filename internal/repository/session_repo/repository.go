// Package session_repo - in-memory хранилище живых сессий блэкджека и UTH.
//
// Каждая сессия имеет собственную блокировку: действие берет ее через Acquire
// и держит до конца, включая вызов леджера, так что у сессии один писатель.
package session_repo

import (
	"casino/internal/model"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry[S model.GameSession] struct {
	lock    chan struct{}
	session S
	deleted bool
}

// Store - сессии одного типа игры
type Store[S model.GameSession] struct {
	mtx      sync.Mutex
	sessions map[string]*entry[S]
	now      func() time.Time
}

func NewStore[S model.GameSession]() *Store[S] {
	return &Store[S]{
		sessions: make(map[string]*entry[S]),
		now:      time.Now,
	}
}

// Create кладет новую сессию
func (s *Store[S]) Create(session S) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.sessions[session.SessionID()]; ok {
		return fmt.Errorf("%w: session %s already exists", model.ErrInternal, session.SessionID())
	}
	s.sessions[session.SessionID()] = &entry[S]{
		lock:    make(chan struct{}, 1),
		session: session,
	}
	return nil
}

// Acquire блокирует сессию для одного действия. Чужая, удаленная
// или отсутствующая сессия одинаково дают model.ErrSessionNotFound.
func (s *Store[S]) Acquire(ctx context.Context, id string, userID int64) (*Lease[S], error) {
	s.mtx.Lock()
	e, ok := s.sessions[id]
	s.mtx.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}

	select {
	case e.lock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if e.deleted || e.session.OwnerID() != userID {
		<-e.lock
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}

	return &Lease[S]{store: s, id: id, e: e}, nil
}

// Len - число живых сессий
func (s *Store[S]) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.sessions)
}

// Sweep удаляет сессии без активности дольше ttl. Занятые сессии пропускаются.
func (s *Store[S]) Sweep(ttl time.Duration) []S {
	cutoff := s.now().Add(-ttl)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	var expired []S
	for id, e := range s.sessions {
		select {
		case e.lock <- struct{}{}:
		default:
			continue
		}
		if e.session.LastActivity().Before(cutoff) {
			e.deleted = true
			delete(s.sessions, id)
			expired = append(expired, e.session)
		}
		<-e.lock
	}
	return expired
}

// RunSweeper периодически вызывает Sweep до отмены ctx.
// Ставки брошенных сессий уже списаны и не возвращаются.
func (s *Store[S]) RunSweeper(ctx context.Context, game model.Game, interval, ttl time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, sess := range s.Sweep(ttl) {
				log.Warn("abandoned session expired, stakes forfeited",
					zap.String("game", string(game)),
					zap.String("session_id", sess.SessionID()),
					zap.Int64("user_id", sess.OwnerID()),
					zap.Time("last_activity", sess.LastActivity()),
				)
			}
		}
	}
}

// Lease - захваченная сессия. Release обязателен, повторный вызов безопасен.
type Lease[S model.GameSession] struct {
	store    *Store[S]
	id       string
	e        *entry[S]
	released bool
}

func (l *Lease[S]) Session() S {
	return l.e.session
}

// Save заменяет состояние сессии
func (l *Lease[S]) Save(session S) {
	l.e.session = session
}

// Delete убирает завершенную сессию из хранилища
func (l *Lease[S]) Delete() {
	l.e.deleted = true

	l.store.mtx.Lock()
	delete(l.store.sessions, l.id)
	l.store.mtx.Unlock()
}

func (l *Lease[S]) Release() {
	if l.released {
		return
	}
	l.released = true
	<-l.e.lock
}
