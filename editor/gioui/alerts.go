package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/vsariola/timeline/editor"
)

type (
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertStyles struct {
		Info    color.NRGBA
		Warning color.NRGBA
		Error   color.NRGBA
		Text    color.NRGBA
	}

	AlertsWidget struct {
		Theme  *material.Theme
		Styles *AlertStyles
		Model  *editor.Alerts
		State  *AlertsState
	}
)

var (
	alertMargin = layout.UniformInset(unit.Dp(6))
	alertInset  = layout.UniformInset(unit.Dp(6))

	defaultAlertStyles = AlertStyles{
		Info:    color.NRGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff},
		Warning: color.NRGBA{R: 0xff, G: 0xa0, B: 0x00, A: 0xff},
		Error:   color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff},
		Text:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
)

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *editor.Alerts, th *material.Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Styles: &defaultAlertStyles, Model: m, State: st}
}

func (a *AlertsWidget) Layout(gtx C) D {
	now := time.Now()
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.State.prevUpdate = now

	totalY := float64(gtx.Dp(38))
	for _, alert := range a.Model.Iterate {
		bg := a.Styles.Info
		switch alert.Priority {
		case editor.Warning:
			bg = a.Styles.Warning
		case editor.Error:
			bg = a.Styles.Error
		}
		bgWidget := func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}
		label := material.Body2(a.Theme, alert.Message)
		label.Color = a.Styles.Text
		alertMargin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				defer op.Offset(image.Point{}).Push(gtx.Ops).Pop()
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(bgWidget),
					layout.Stacked(func(gtx C) D {
						return alertInset.Layout(gtx, label.Layout)
					}),
				)
				macro := recording.Stop()
				delta := float64(dims.Size.Y + gtx.Dp(alertMargin.Bottom))
				op.Offset(image.Point{0, int(-totalY*alert.FadeLevel + delta*(1-alert.FadeLevel))}).Add(gtx.Ops)
				totalY += delta
				macro.Add(gtx.Ops)
				return dims
			})
		})
	}
	return D{}
}
