package editor

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/arcphys/field-editor/internal/config"
)

// Theme colors
var (
	colBg     = color.RGBA{R: 16, G: 19, B: 26, A: 255}
	colPanel  = color.RGBA{R: 34, G: 40, B: 52, A: 255}
	colField  = color.RGBA{R: 24, G: 29, B: 38, A: 255}
	colWidget = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	colHover  = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	colPress  = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	colBorder = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	colDim    = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	colFocus  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colMark   = color.RGBA{R: 130, G: 200, B: 255, A: 255}
)

type cmdKind int

const (
	cmdFillRect cmdKind = iota
	cmdStrokeRect
	cmdFillCircle
	cmdStrokeCircle
	cmdText
)

// drawCmd is one primitive recorded while the form is built in Update
// and replayed in Draw.
type drawCmd struct {
	kind       cmdKind
	x, y, w, h float32
	stroke     float32
	clr        color.RGBA
	text       string
}

// uiState carries the per-frame input snapshot plus the persistent
// widget state (held button, keyboard focus, in-progress text edit).
type uiState struct {
	mouseX, mouseY int
	justPressed    bool
	justReleased   bool
	wheelY         float64
	chars          []rune

	// active is the widget the mouse button went down on.
	active string

	// focus is the text field receiving keyboard input; edit is its
	// in-progress value.
	focus string
	edit  []rune

	// pending holds an edit whose field lost focus before it could
	// commit; the owning widget claims it on its next build.
	pendingID      string
	pendingText    string
	pendingNew     bool
	pendingClaimed bool

	clickConsumed bool
	blink         int
}

func (u *uiState) beginFrame() {
	u.mouseX, u.mouseY = ebiten.CursorPosition()
	u.justPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	u.justReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, u.wheelY = ebiten.Wheel()
	u.chars = ebiten.AppendInputChars(u.chars[:0])
	u.clickConsumed = false
	u.pendingNew = false
	u.pendingClaimed = false
	u.blink++
}

func (u *uiState) endFrame() {
	if u.justReleased {
		u.active = ""
	}
	// Click on empty space drops keyboard focus.
	if u.justPressed && !u.clickConsumed {
		u.blur()
	}
	// A pending edit whose field was not built this frame (section
	// collapsed, entry deleted) has nowhere to commit.
	if u.pendingID != "" && !u.pendingClaimed && !u.pendingNew {
		u.pendingID, u.pendingText = "", ""
	}
}

// blur moves the current edit into the pending slot so the owning
// field can commit it the next time it is built.
func (u *uiState) blur() {
	if u.focus == "" {
		return
	}
	u.pendingID, u.pendingText = u.focus, string(u.edit)
	u.pendingNew = true
	u.focus = ""
}

func (u *uiState) claimPending(id string) (string, bool) {
	if u.pendingID != id {
		return "", false
	}
	u.pendingClaimed = true
	text := u.pendingText
	u.pendingID, u.pendingText = "", ""
	return text, true
}

func (u *uiState) hover(x, y, w, h float64) bool {
	mx, my := float64(u.mouseX), float64(u.mouseY)
	return mx >= x && mx <= x+w && my >= y && my <= y+h
}

// form lays widgets out top to bottom, rows left to right, recording
// draw commands as it goes. A new form is built every frame.
type form struct {
	ed   *Editor
	ui   *uiState
	x, y float64
	cmds []drawCmd
}

func (f *form) place(w float64) (float64, float64) {
	x, y := f.x, f.y
	f.x += w + config.Pad
	return x, y
}

func (f *form) endRow() {
	f.x = config.Margin
	f.y += config.RowH + config.RowGap
}

func (f *form) fillRect(x, y, w, h float64, clr color.RGBA) {
	f.cmds = append(f.cmds, drawCmd{kind: cmdFillRect, x: float32(x), y: float32(y), w: float32(w), h: float32(h), clr: clr})
}

func (f *form) strokeRect(x, y, w, h, stroke float64, clr color.RGBA) {
	f.cmds = append(f.cmds, drawCmd{kind: cmdStrokeRect, x: float32(x), y: float32(y), w: float32(w), h: float32(h), stroke: float32(stroke), clr: clr})
}

func (f *form) fillCircle(cx, cy, r float64, clr color.RGBA) {
	f.cmds = append(f.cmds, drawCmd{kind: cmdFillCircle, x: float32(cx), y: float32(cy), w: float32(r), clr: clr})
}

func (f *form) strokeCircle(cx, cy, r, stroke float64, clr color.RGBA) {
	f.cmds = append(f.cmds, drawCmd{kind: cmdStrokeCircle, x: float32(cx), y: float32(cy), w: float32(r), stroke: float32(stroke), clr: clr})
}

func (f *form) text(s string, x, y float64) {
	f.cmds = append(f.cmds, drawCmd{kind: cmdText, x: float32(x), y: float32(y), text: s})
}

// label places static text aligned to the row's text baseline.
func (f *form) label(s string) {
	x, y := f.place(float64(len(s) * config.CharW))
	f.text(s, x, y+(config.RowH-config.LineH)/2)
}

// header draws a full-width collapsing section bar and reports whether
// the section is open.
func (f *form) header(title string) bool {
	id := "hdr:" + title
	w := float64(config.WindowWidth - 2*config.Margin)
	x, y := f.place(w)
	u := f.ui

	hov := u.hover(x, y, w, config.RowH)
	if hov && u.justPressed {
		u.active = id
		u.clickConsumed = true
	}
	if u.justReleased && u.active == id && hov {
		f.ed.open[title] = !f.ed.open[title]
	}

	bg := colPanel
	if hov {
		bg = colHover
	}
	f.fillRect(x, y, w, config.RowH, bg)
	f.strokeRect(x, y, w, config.RowH, 1, colDim)
	arrow := "[+]"
	if f.ed.open[title] {
		arrow = "[-]"
	}
	f.text(arrow+" "+title, x+config.Pad, y+(config.RowH-config.LineH)/2)
	f.endRow()
	return f.ed.open[title]
}

func (f *form) button(id, label string) bool {
	w := float64(len(label)*config.CharW + 2*config.ButtonPadX)
	x, y := f.place(w)
	u := f.ui

	hov := u.hover(x, y, w, config.RowH)
	if hov && u.justPressed {
		u.active = id
		u.clickConsumed = true
	}
	clicked := u.justReleased && u.active == id && hov

	bg := colWidget
	if u.active == id {
		bg = colPress
	} else if hov {
		bg = colHover
	}
	f.fillRect(x, y, w, config.RowH, bg)
	f.strokeRect(x, y, w, config.RowH, 2, colBorder)
	f.text(label, x+config.ButtonPadX, y+(config.RowH-config.LineH)/2)
	return clicked
}

func (f *form) checkbox(id, label string, v *bool) {
	w := float64(config.CheckboxSz + config.Pad + len(label)*config.CharW)
	x, y := f.place(w)
	u := f.ui

	hov := u.hover(x, y, w, config.RowH)
	if hov && u.justPressed {
		u.active = id
		u.clickConsumed = true
	}
	if u.justReleased && u.active == id && hov {
		*v = !*v
	}

	bx := x
	by := y + (config.RowH-config.CheckboxSz)/2
	f.fillRect(bx, by, config.CheckboxSz, config.CheckboxSz, colField)
	f.strokeRect(bx, by, config.CheckboxSz, config.CheckboxSz, 1, colBorder)
	if *v {
		f.fillRect(bx+3, by+3, config.CheckboxSz-6, config.CheckboxSz-6, colMark)
	}
	f.text(label, x+config.CheckboxSz+config.Pad, y+(config.RowH-config.LineH)/2)
}

// radio sets *v to val when clicked and draws filled when selected.
func (f *form) radio(id, label string, v *int, val int) {
	w := float64(config.RadioSz + config.Pad + len(label)*config.CharW)
	x, y := f.place(w)
	u := f.ui

	hov := u.hover(x, y, w, config.RowH)
	if hov && u.justPressed {
		u.active = id
		u.clickConsumed = true
	}
	if u.justReleased && u.active == id && hov {
		*v = val
	}

	r := float64(config.RadioSz) / 2
	cx := x + r
	cy := y + float64(config.RowH)/2
	f.strokeCircle(cx, cy, r, 1, colBorder)
	if *v == val {
		f.fillCircle(cx, cy, r-3, colMark)
	}
	f.text(label, x+config.RadioSz+config.Pad, y+(config.RowH-config.LineH)/2)
}

// editableField draws a single-line text box with keyboard focus. cur
// is the committed value; the returned text is valid only on the frame
// a commit lands (Enter, or focus moving away since the last build).
// limit is an exclusive byte-length bound, <=0 for none.
func (f *form) editableField(id, cur string, limit int, w float64) (string, bool) {
	x, y := f.place(w)
	u := f.ui

	out, committed := "", false
	if text, ok := u.claimPending(id); ok {
		out, committed = text, true
		cur = text
	}

	hov := u.hover(x, y, w, config.RowH)
	if hov && u.justPressed {
		u.clickConsumed = true
		if u.focus != id {
			u.blur()
			u.focus = id
			u.edit = append(u.edit[:0], []rune(cur)...)
		}
	}

	if u.focus == id {
		u.edit = insertRunes(u.edit, u.chars, limit)
		if repeatingKeyPressed(ebiten.KeyBackspace) && len(u.edit) > 0 {
			u.edit = u.edit[:len(u.edit)-1]
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			out, committed = string(u.edit), true
			cur = out
			u.focus = ""
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			// Cancel the edit, keep the committed value.
			u.focus = ""
		}
	}

	shown := cur
	border := colDim
	if u.focus == id {
		shown = string(u.edit)
		if (u.blink/30)%2 == 0 {
			shown += "_"
		}
		border = colFocus
	} else if hov {
		border = colBorder
	}

	f.fillRect(x, y, w, config.RowH, colField)
	f.strokeRect(x, y, w, config.RowH, 1, border)
	f.text(clipText(shown, w), x+4, y+(config.RowH-config.LineH)/2)
	return out, committed
}

func (f *form) textField(id string, v *string, limit int, w float64) {
	if text, ok := f.editableField(id, *v, limit, w); ok {
		*v = text
	}
}

// numEditLimit bounds numeric edit buffers; far more than any float
// the visualizer cares about.
const numEditLimit = 32

func (f *form) floatField(id string, v *float64, w float64) {
	if text, ok := f.editableField(id, formatFloat(*v), numEditLimit, w); ok {
		*v = parseFloatOr(text, *v)
	}
}

func (f *form) intField(id string, v *int, w float64) {
	if text, ok := f.editableField(id, strconv.Itoa(*v), numEditLimit, w); ok {
		*v = parseIntOr(text, *v)
	}
}

// insertRunes appends printable input runes to buf, refusing anything
// that would push the byte length to limit or beyond.
func insertRunes(buf, in []rune, limit int) []rune {
	for _, r := range in {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if limit > 0 && len(string(buf))+len(string(r)) >= limit {
			break
		}
		buf = append(buf, r)
	}
	return buf
}

// repeatingKeyPressed fires on the initial press and then repeats
// while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func parseFloatOr(text string, old float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return old
	}
	return v
}

func parseIntOr(text string, old int) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return old
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// clipText trims s to what fits in a box w pixels wide.
func clipText(s string, w float64) string {
	n := (int(w) - 8) / config.CharW
	if n < 1 || len(s) <= n {
		return s
	}
	return s[:n]
}
