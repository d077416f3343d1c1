package editor

import (
	"time"
)

type (
	// Alerts is the list of notifications shown to the user. Each alert fades
	// in, stays visible for its Duration and then fades out.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string // alerts with the same non-empty name replace each other
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

// Alerts returns the alerts of the timeline.
func (t *Timeline) Alerts() *Alerts { return &t.alerts }

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

func (m *Alerts) Len() int { return len(m.alerts) }

// Update advances the alert animations by d. It returns true while there are
// alerts left, i.e. the caller should update again soon.
func (m *Alerts) Update(d time.Duration) bool {
	fade := float64(d) / float64(alertFadeTime)
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := &m.alerts[i]
		if a.Duration > 0 {
			a.Duration = max(a.Duration-d, 0)
			a.FadeLevel = min(a.FadeLevel+fade, 1)
			continue
		}
		a.FadeLevel -= fade
		if a.FadeLevel <= 0 {
			m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
		}
	}
	return len(m.alerts) > 0
}

// Iterate yields the alerts, oldest first. It is meant to be used with a
// range-over-func loop: for i, a := range alerts.Iterate {...}
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}
