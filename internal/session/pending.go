package session

import "sync"

// PendingStore tracks, per user, a day that was picked on the create calendar
// but not yet paired with note text. The user id is the sole key, so a second
// tap replaces the first (last write wins) and a user can never accumulate
// more than one pending day.
type PendingStore struct {
	mu   sync.Mutex
	days map[int64]int
}

func NewPendingStore() *PendingStore {
	return &PendingStore{days: make(map[int64]int)}
}

func (p *PendingStore) Set(userID int64, day int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.days[userID] = day
}

// Take reads and removes the pending day in one critical section. Of any
// number of concurrent callers for the same user, exactly one gets the day;
// the rest get false. This is what stops a rapid double-send of text from
// creating two notes.
func (p *PendingStore) Take(userID int64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	day, ok := p.days[userID]
	if ok {
		delete(p.days, userID)
	}
	return day, ok
}

func (p *PendingStore) Clear(userID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.days, userID)
}
