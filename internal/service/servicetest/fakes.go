// Package servicetest - in-memory подделки репозиториев и менеджера транзакций для тестов сервисов.
package servicetest

import (
	"casino/internal/model"
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"
)

// Wallet - балансы в памяти
type Wallet struct {
	mtx      sync.Mutex
	balances map[int64]int64
	// FailCredit заставляет Credit вернуть ошибку
	FailCredit error
}

func NewWallet(balances map[int64]int64) *Wallet {
	if balances == nil {
		balances = make(map[int64]int64)
	}
	return &Wallet{balances: balances}
}

func (w *Wallet) Debit(_ context.Context, userID int64, amount int64) (int64, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.balances[userID] < amount {
		return 0, fmt.Errorf("fake wallet: %w", model.ErrInsufficientFunds)
	}
	w.balances[userID] -= amount
	return w.balances[userID], nil
}

func (w *Wallet) Credit(_ context.Context, userID int64, amount int64) (int64, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.FailCredit != nil {
		return 0, w.FailCredit
	}
	w.balances[userID] += amount
	return w.balances[userID], nil
}

func (w *Wallet) GetBalance(_ context.Context, userID int64) (int64, error) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.balances[userID], nil
}

// Balance - баланс без контекста для проверок в тестах
func (w *Wallet) Balance(userID int64) int64 {
	b, _ := w.GetBalance(context.Background(), userID)
	return b
}

func (w *Wallet) snapshot() map[int64]int64 {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return maps.Clone(w.balances)
}

func (w *Wallet) restore(b map[int64]int64) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.balances = b
}

// Audit - журнал в памяти
type Audit struct {
	mtx     sync.Mutex
	records []model.AuditRecord
}

func NewAudit() *Audit {
	return &Audit{}
}

func (a *Audit) Append(_ context.Context, rec *model.AuditRecord) (int64, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	rec.ID = int64(len(a.records) + 1)
	rec.CreatedAt = time.Now()
	a.records = append(a.records, *rec)
	return rec.ID, nil
}

func (a *Audit) Get(_ context.Context, id int64) (*model.AuditRecord, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if id <= 0 || int(id) > len(a.records) {
		return nil, fmt.Errorf("%w: audit record %d not found", model.ErrValidation, id)
	}
	rec := a.records[id-1]
	return &rec, nil
}

func (a *Audit) FinalExists(_ context.Context, serverSeedHash string) (bool, error) {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	for _, rec := range a.records {
		if rec.Final && rec.ServerSeedHash == serverSeedHash {
			return true, nil
		}
	}
	return false, nil
}

// Records - копия журнала
func (a *Audit) Records() []model.AuditRecord {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return append([]model.AuditRecord(nil), a.records...)
}

func (a *Audit) truncate(n int) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	a.records = a.records[:n]
}

func (a *Audit) len() int {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	return len(a.records)
}

// TxManager откатывает Wallet и Audit, если fn вернула ошибку
type TxManager struct {
	mtx    sync.Mutex
	wallet *Wallet
	audit  *Audit
}

func NewTxManager(wallet *Wallet, audit *Audit) *TxManager {
	return &TxManager{wallet: wallet, audit: audit}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	balances := m.wallet.snapshot()
	records := m.audit.len()

	if err := fn(ctx); err != nil {
		m.wallet.restore(balances)
		m.audit.truncate(records)
		return err
	}
	return nil
}

// Reporter - сборщик достижений с заданным ответом
type Reporter struct {
	mtx     sync.Mutex
	Reports []model.RoundReport
	Unlock  []model.Achievement
	Err     error
}

func (r *Reporter) Report(_ context.Context, report model.RoundReport) ([]model.Achievement, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.Reports = append(r.Reports, report)
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Unlock, nil
}

// ErrBoom - произвольный сбой для тестов
var ErrBoom = errors.New("boom")

// Env - набор подделок, связанных одной транзакцией
type Env struct {
	Wallet   *Wallet
	Audit    *Audit
	Tx       *TxManager
	Reporter *Reporter
}

func NewEnv(balances map[int64]int64) *Env {
	w := NewWallet(balances)
	a := NewAudit()
	return &Env{
		Wallet:   w,
		Audit:    a,
		Tx:       NewTxManager(w, a),
		Reporter: &Reporter{},
	}
}
