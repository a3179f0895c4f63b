// Package likeguard provides a process-wide, best-effort dedup of the
// fast-path topic like action per browser session. It is not the source
// of truth for reactions; it only throttles the counter-increment
// endpoint. Entries are never evicted, matching the behavior of the
// original buffer, and CanLike/RecordLike remain two separate calls, so
// two concurrent requests from one session can still race past the
// check. That race is an accepted property of the throttle.
package likeguard

import "sync"

type key struct {
	sessionID string
	topicID   int64
}

// Guard tracks which (session, topic) pairs already used the fast-path
// like. Safe for concurrent use; one instance is shared by the whole
// process.
type Guard struct {
	mu    sync.RWMutex
	liked map[key]struct{}
}

func NewGuard() *Guard {
	return &Guard{
		liked: make(map[key]struct{}),
	}
}

// CanLike reports whether the session has not yet fast-path-liked the
// topic. Pure read.
func (g *Guard) CanLike(sessionID string, topicID int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.liked[key{sessionID, topicID}]
	return !ok
}

// RecordLike marks the session as having liked the topic. Idempotent.
func (g *Guard) RecordLike(sessionID string, topicID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.liked[key{sessionID, topicID}] = struct{}{}
}

// Len reports the number of recorded pairs. The guard never evicts, so
// this is the figure to watch for growth.
func (g *Guard) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.liked)
}
