package model

import (
	"testing"
	"time"
)

func TestSessionModel_Lifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	s := m.Stats()
	if s.Current != 5*time.Second || s.Total != 5*time.Second {
		t.Fatalf("expected 5s current and total; got %+v", s)
	}

	m.OnTick(false, base.Add(6*time.Second))
	s = m.Stats()
	if s.Current != 6*time.Second || s.Total != 6*time.Second {
		t.Fatalf("after detach expected 6s persisted; got %+v", s)
	}

	m.OnTick(false, base.Add(9*time.Second))
	if s2 := m.Stats(); s2 != s {
		t.Fatalf("idle tick changed stats: before=%+v after=%+v", s, s2)
	}

	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	s = m.Stats()
	if s.Current != 3*time.Second || s.Total != 9*time.Second {
		t.Fatalf("second session expected current=3s total=9s; got %+v", s)
	}
}

func TestSessionModel_Commits(t *testing.T) {
	m := NewSessionModel()
	m.RecordCommit()
	m.RecordCommit()
	if got := m.Stats().Commits; got != 2 {
		t.Fatalf("expected 2 commits, got %d", got)
	}
	var nilModel *SessionModel
	nilModel.RecordCommit()
	nilModel.OnTick(true, time.Now())
	if nilModel.Stats() != (SessionStats{}) {
		t.Fatalf("nil model should report zero stats")
	}
}

func TestPreviewModel_MarkRendered(t *testing.T) {
	var m PreviewModel
	if m.Enabled() {
		t.Fatalf("zero value should be disabled")
	}
	m.SetEnabled(true)
	if !m.MarkRendered(1) || m.MarkRendered(1) || !m.MarkRendered(2) {
		t.Fatalf("duplicate sequence handling wrong")
	}
	if m.Rendered() != 2 {
		t.Fatalf("expected 2 rendered, got %d", m.Rendered())
	}
}
