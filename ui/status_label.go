package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stretchreminder/icon"
)

const (
	statusActiveText   = "Reminders are running"
	statusInactiveText = "Reminders are off"
)

// StatusLabel is a colored banner showing whether reminders are running
type StatusLabel struct {
	widget.BaseWidget
	active  bool
	textObj *canvas.Text
	bgRect  *canvas.Rectangle
}

// NewStatusLabel creates a status label in the inactive state
func NewStatusLabel() *StatusLabel {
	sl := &StatusLabel{}
	sl.ExtendBaseWidget(sl)
	return sl
}

// CreateRenderer implements fyne.Widget
func (sl *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	sl.textObj = canvas.NewText(sl.text(), color.White)
	sl.textObj.TextStyle = fyne.TextStyle{Bold: true}
	sl.textObj.Alignment = fyne.TextAlignCenter

	sl.bgRect = canvas.NewRectangle(sl.background())

	return &statusLabelRenderer{
		label:     sl,
		container: container.NewStack(sl.bgRect, sl.textObj),
	}
}

// SetActive updates the label for the given reminder state
func (sl *StatusLabel) SetActive(active bool) {
	sl.active = active
	sl.Refresh()
}

func (sl *StatusLabel) text() string {
	if sl.active {
		return statusActiveText
	}
	return statusInactiveText
}

func (sl *StatusLabel) background() color.Color {
	if sl.active {
		return icon.Green
	}
	return icon.Red
}

type statusLabelRenderer struct {
	label     *StatusLabel
	container *fyne.Container
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *statusLabelRenderer) Refresh() {
	r.label.textObj.Text = r.label.text()
	r.label.bgRect.FillColor = r.label.background()
	r.label.textObj.Refresh()
	r.label.bgRect.Refresh()
}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *statusLabelRenderer) Destroy() {}
