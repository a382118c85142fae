package ledger

import (
	"sync"
	"time"

	"webex_gacha/internal/domain"
)

// Ledger owns all mutation of per-user ticket state.
type Ledger interface {
	// GetOrCreate returns the account for the given email, creating it with the
	// initial ticket grant the first time the identity is seen.
	GetOrCreate(email string) domain.UserAccount
	// TryConsumeTicket atomically checks tickets > 0 and decrements by one.
	// It returns the remaining count and whether a ticket was consumed.
	TryConsumeTicket(email string) (remaining int, ok bool)
}

type account struct {
	mu   sync.Mutex
	data domain.UserAccount
}

// MemoryLedger is a process-lifetime in-memory ledger. State is lost on
// restart by design. The map lock only covers lookup and insert; ticket
// mutation takes the per-account lock, so users never block each other and no
// lock is ever held across I/O.
type MemoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{accounts: make(map[string]*account)}
}

func (l *MemoryLedger) get(email string) *account {
	l.mu.RLock()
	a := l.accounts[email]
	l.mu.RUnlock()
	if a != nil {
		return a
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if a = l.accounts[email]; a == nil {
		a = &account{data: domain.UserAccount{
			Email:          email,
			Tickets:        domain.InitialTickets,
			LastRefillDate: time.Now(),
		}}
		l.accounts[email] = a
	}
	return a
}

func (l *MemoryLedger) GetOrCreate(email string) domain.UserAccount {
	a := l.get(email)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data
}

func (l *MemoryLedger) TryConsumeTicket(email string) (int, bool) {
	a := l.get(email)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.data.Tickets <= 0 {
		return a.data.Tickets, false
	}
	a.data.Tickets--
	return a.data.Tickets, true
}

// Snapshot returns a copy of the account without creating it.
func (l *MemoryLedger) Snapshot(email string) (domain.UserAccount, bool) {
	l.mu.RLock()
	a := l.accounts[email]
	l.mu.RUnlock()
	if a == nil {
		return domain.UserAccount{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data, true
}
