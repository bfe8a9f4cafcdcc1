package model

import "time"

// SessionStats is what the status row shows about the effects session.
type SessionStats struct {
	Current time.Duration
	Total   time.Duration
	Commits int
}

// SessionModel measures how long an effects session has been attached and
// counts committed slider edits. Presenters call OnTick periodically and read
// Stats. The zero value is ready to use.
type SessionModel struct {
	active    bool
	startedAt time.Time
	current   time.Duration
	finished  time.Duration
	commits   int
}

func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick folds the session state observed at now into the durations.
func (m *SessionModel) OnTick(active bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case active && !m.active:
		m.active = true
		m.startedAt = now
		m.current = 0
	case active:
		m.current = now.Sub(m.startedAt)
	case m.active:
		m.current = now.Sub(m.startedAt)
		m.finished += m.current
		m.active = false
	}
}

// RecordCommit counts one committed edit.
func (m *SessionModel) RecordCommit() {
	if m == nil {
		return
	}
	m.commits++
}

// Stats returns the current and accumulated session time. Total includes the
// running session.
func (m *SessionModel) Stats() SessionStats {
	if m == nil {
		return SessionStats{}
	}
	s := SessionStats{Current: m.current, Total: m.finished, Commits: m.commits}
	if m.active {
		s.Total += m.current
	}
	return s
}
