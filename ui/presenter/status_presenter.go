package presenter

import "time"

// StatusView sets the status line in the view.
type StatusView interface{ SetStatus(string) }

// StatusPresenter queues status messages raised by user commands and shows
// the most recent one on the next Tick. Messages expire after ttl.
type StatusPresenter struct {
	view    StatusView
	ttl     time.Duration
	pending []string
	latest  string
	shownAt time.Time
}

func NewStatusPresenter(view StatusView, ttl time.Duration) *StatusPresenter {
	return &StatusPresenter{view: view, ttl: ttl}
}

// Post queues msg. Empty messages are ignored.
func (p *StatusPresenter) Post(msg string) {
	if p == nil || msg == "" {
		return
	}
	p.pending = append(p.pending, msg)
}

// Tick reflects the latest queued message, or clears an expired one.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		p.shownAt = now
		if last != p.latest {
			p.latest = last
			p.view.SetStatus(last)
		}
		return
	}
	if p.latest != "" && p.ttl > 0 && now.Sub(p.shownAt) >= p.ttl {
		p.latest = ""
		p.view.SetStatus("")
	}
}
