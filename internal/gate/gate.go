// Package gate decides whether an inbound chat message is in scope for the
// certification tutor before it reaches the LLM.
//
// Classification is one-shot per conversation, not per message: once a
// conversation anchors in-domain, every follow-up inside the timeout window
// is allowed so natural phrasing like "can you explain that more?" is not
// re-classified. Staleness always wins: after ConversationTimeout of
// silence the conversation is re-evaluated from scratch.
package gate

import (
	"strings"
	"sync"
	"time"
)

// ConversationTimeout is how long domain mode survives without a message.
const ConversationTimeout = 10 * time.Minute

// defaultConversation keys state for callers that send no conversation id.
const defaultConversation = "default"

// maxTracked bounds the state map; stale entries are swept past this size.
const maxTracked = 10000

// State is the classifier state for one conversation.
type State struct {
	InDomainMode bool
	LastSignal   time.Time
	TopicLabel   string
}

// Tracker maps conversation ids to classifier state. The timeout check,
// keyword match, and state write for one message happen under a single
// lock, so concurrent messages on the same conversation cannot interleave
// between the staleness reset and the mode write.
type Tracker struct {
	mu     sync.Mutex
	states map[string]*State

	// now is replaceable in tests.
	now func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		states: make(map[string]*State),
		now:    time.Now,
	}
}

// Allow classifies one inbound message for the given conversation and
// updates that conversation's state. It never fails: an unmatched message
// is a normal not-allowed outcome.
func (t *Tracker) Allow(conversationID, message string) bool {
	if conversationID == "" {
		conversationID = defaultConversation
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	st, ok := t.states[conversationID]
	if !ok {
		if len(t.states) >= maxTracked {
			t.sweepLocked(now)
		}
		st = &State{}
		t.states[conversationID] = st
	}

	// Staleness wins before any new check runs.
	if st.InDomainMode && now.Sub(st.LastSignal) > ConversationTimeout {
		st.InDomainMode = false
		st.TopicLabel = ""
	}

	// Sticky mode: anchored conversations accept everything and refresh
	// the window.
	if st.InDomainMode {
		st.LastSignal = now
		return true
	}

	lower := strings.ToLower(message)

	// Off-topic starters are checked first so an unambiguous non-domain
	// opener is not overridden by an incidental keyword collision.
	for _, starter := range offTopicStarters {
		if strings.Contains(lower, starter) {
			return false
		}
	}

	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			st.InDomainMode = true
			st.LastSignal = now
			st.TopicLabel = kw
			return true
		}
	}

	// No signal either way: not allowed, state untouched.
	return false
}

// Snapshot returns a copy of the conversation's state for inspection.
func (t *Tracker) Snapshot(conversationID string) (State, bool) {
	if conversationID == "" {
		conversationID = defaultConversation
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[conversationID]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// sweepLocked drops conversations idle past the timeout. Caller holds mu.
func (t *Tracker) sweepLocked(now time.Time) {
	for id, st := range t.states {
		if now.Sub(st.LastSignal) > ConversationTimeout {
			delete(t.states, id)
		}
	}
}
