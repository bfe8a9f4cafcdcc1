package presenter

import (
	"strings"
	"time"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"
)

// ActiveSource reports whether an effects session is attached.
type ActiveSource interface{ Active() bool }

// SessionView displays session durations and the commit count.
type SessionView interface {
	SetSession(stats model.SessionStats)
}

// SessionPresenter advances the session model and pushes its stats to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	active ActiveSource
	view   SessionView
	last   model.SessionStats
	shown  bool
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, active ActiveSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, active: active, view: view}
}

// Tick folds now into the model and refreshes the view when the stats moved.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.active == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.active.Active(), now)
	s := p.sess.Stats()
	if p.shown && s == p.last {
		return
	}
	p.last, p.shown = s, true
	p.view.SetSession(s)
}

// FormatTemplates renders the active templates of s in module order, e.g.
// "filter: Filter-Serene · sticker: Sticker-Cat". Inactive sessions read "no session".
func FormatTemplates(s beauty.Summary) string {
	if !s.Active {
		return "no session"
	}
	var parts []string
	for _, m := range beauty.Modules {
		if name, ok := s.Templates[m]; ok && s.Enabled[m] {
			parts = append(parts, m.String()+": "+name)
		}
	}
	return strings.Join(parts, " · ")
}
