// Package keylock serializes work per key inside one process. Orchestrators share a
// single Mutex so a battle payout and a growth action on the same player never
// interleave their read-modify-write cycles.
package keylock

import "sync"

// Key builds a namespaced lock key such as "player:p1"
func Key(kind, id string) string {
	return kind + ":" + id
}

// Player is the lock key for everything that rewrites a player's session or entities
func Player(playerID string) string {
	return Key("player", playerID)
}

// Battle is the lock key for a single battle
func Battle(battleID string) string {
	return Key("battle", battleID)
}

// Mutex hands out one lock per key and forgets keys nobody holds
type Mutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

// New creates an empty keyed mutex
func New() *Mutex {
	return &Mutex{locks: make(map[string]*refLock)}
}

// Lock blocks until key is free and returns the matching unlock
func (k *Mutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// held reports how many keys are tracked
func (k *Mutex) held() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
