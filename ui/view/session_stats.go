package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Shengwang-Community/ShengwangBeautyView/ui/model"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows session durations, commit count and active templates.
type SessionStats interface {
	SetSession(s model.SessionStats)
	SetTemplates(text string)
}

type sessionStats struct {
	sessionLbl   *LabelWidget
	totalLbl     *LabelWidget
	commitsLbl   *LabelWidget
	templatesLbl *LabelWidget
}

// NewSessionStats lays the labels out on row starting at startCol.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{
		sessionLbl:   Label(Width(14), Anchor("w")),
		totalLbl:     Label(Width(14), Anchor("w")),
		commitsLbl:   Label(Width(12), Anchor("w")),
		templatesLbl: Label(Width(48), Anchor("w")),
	}
	for i, l := range []*LabelWidget{s.sessionLbl, s.totalLbl, s.commitsLbl, s.templatesLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.SetSession(model.SessionStats{})
	s.SetTemplates("")
	return s
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (s *sessionStats) SetSession(st model.SessionStats) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + clock(st.Current)))
	s.totalLbl.Configure(Txt("Total: " + clock(st.Total)))
	s.commitsLbl.Configure(Txt("Edits: " + humanize.Comma(int64(st.Commits))))
}

func (s *sessionStats) SetTemplates(text string) {
	if s == nil || s.templatesLbl == nil {
		return
	}
	if text == "" {
		text = "no templates"
	}
	s.templatesLbl.Configure(Txt(text))
}
