package gate

import (
	"testing"
	"time"
)

// testTracker returns a Tracker with a controllable clock.
func testTracker(start time.Time) (*Tracker, *time.Time) {
	clock := start
	tr := NewTracker()
	tr.now = func() time.Time { return clock }
	return tr, &clock
}

func TestAllow_DomainKeywordAnchors(t *testing.T) {
	tr, _ := testTracker(time.Now())

	if !tr.Allow("c1", "Tell me about EC2 instances") {
		t.Fatal("domain keyword should be allowed")
	}

	st, ok := tr.Snapshot("c1")
	if !ok || !st.InDomainMode {
		t.Fatal("expected conversation anchored in domain mode")
	}
	if st.TopicLabel != "ec2" {
		t.Errorf("expected topic label 'ec2', got %q", st.TopicLabel)
	}
}

func TestAllow_StickyWithinWindow(t *testing.T) {
	tr, clock := testTracker(time.Now())

	if !tr.Allow("c1", "what is azure?") {
		t.Fatal("expected anchor message allowed")
	}

	// Follow-up with no domain signal, even an off-topic starter, rides
	// the sticky mode.
	*clock = clock.Add(5 * time.Minute)
	if !tr.Allow("c1", "what's the weather like?") {
		t.Error("sticky mode should allow any message within the window")
	}
}

func TestAllow_StalenessResetsMode(t *testing.T) {
	tr, clock := testTracker(time.Now())

	if !tr.Allow("c1", "explain AZ-900 domains") {
		t.Fatal("expected anchor message allowed")
	}

	*clock = clock.Add(ConversationTimeout + time.Second)
	if tr.Allow("c1", "what's the weather like?") {
		t.Error("stale conversation must be re-evaluated from scratch")
	}

	st, _ := tr.Snapshot("c1")
	if st.InDomainMode {
		t.Error("expected domain mode cleared after staleness reset")
	}
	if st.TopicLabel != "" {
		t.Errorf("expected topic label cleared, got %q", st.TopicLabel)
	}
}

func TestAllow_StalenessThenNewAnchor(t *testing.T) {
	tr, clock := testTracker(time.Now())

	tr.Allow("c1", "explain azure regions")
	*clock = clock.Add(ConversationTimeout + time.Minute)

	if !tr.Allow("c1", "ok, now tell me about S3") {
		t.Error("fresh domain keyword after staleness should re-anchor")
	}
}

func TestAllow_OffTopicStarterRejected(t *testing.T) {
	tr, _ := testTracker(time.Now())

	if tr.Allow("c1", "what's the weather in Seattle?") {
		t.Error("off-topic starter must be rejected")
	}
	if _, ok := tr.Snapshot("c1"); !ok {
		t.Fatal("state entry should exist")
	}
	st, _ := tr.Snapshot("c1")
	if st.InDomainMode {
		t.Error("rejected message must not anchor domain mode")
	}
}

func TestAllow_StarterBeatsKeyword(t *testing.T) {
	tr, _ := testTracker(time.Now())

	// Both lists match; the off-topic starter is checked first.
	if tr.Allow("c1", "what's the weather at the AWS summit?") {
		t.Error("off-topic starter takes precedence over incidental keyword")
	}
}

func TestAllow_NoSignalRejectedStateUntouched(t *testing.T) {
	tr, _ := testTracker(time.Now())

	if tr.Allow("c1", "hello there, how are you today?") {
		t.Error("neutral message before anchoring must be rejected")
	}
	st, _ := tr.Snapshot("c1")
	if st.InDomainMode || !st.LastSignal.IsZero() {
		t.Error("no-signal message must leave state untouched")
	}
}

func TestAllow_ConversationsAreIndependent(t *testing.T) {
	tr, _ := testTracker(time.Now())

	if !tr.Allow("c1", "tell me about azure") {
		t.Fatal("expected c1 anchored")
	}
	if tr.Allow("c2", "what's for dinner? any recipe?") {
		t.Error("c2 must not inherit c1's domain mode")
	}
}

func TestAllow_EmptyIDUsesDefaultConversation(t *testing.T) {
	tr, _ := testTracker(time.Now())

	tr.Allow("", "explain iaas vs paas")
	if !tr.Allow("", "and what about pricing?") {
		t.Error("empty conversation ids should share the default state")
	}
}

func TestAllow_CaseInsensitive(t *testing.T) {
	tr, _ := testTracker(time.Now())

	if !tr.Allow("c1", "WHAT IS AZURE BLOB STORAGE?") {
		t.Error("keyword matching should be case-insensitive")
	}
}

func TestSweep_DropsStaleConversations(t *testing.T) {
	tr, clock := testTracker(time.Now())

	tr.Allow("old", "tell me about azure")
	*clock = clock.Add(ConversationTimeout + time.Minute)

	tr.sweepLocked(*clock)
	if _, ok := tr.Snapshot("old"); ok {
		t.Error("expected stale conversation swept")
	}
}
