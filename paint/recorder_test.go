package paint

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/gogpu/wrapcheck/text"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdTranslate, "Translate"},
		{CmdDrawDottedRect, "DrawDottedRect"},
		{CmdDrawText, "DrawText"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	m := text.NewMeasurer(nil)

	r.Save()
	r.Translate(3, 4)
	r.FillRect(image.Rect(0, 0, 2, 2), color.Black)
	if got := r.Origin(); got != image.Pt(3, 4) {
		t.Errorf("Origin() = %v, want (3,4)", got)
	}
	r.StrokeRect(image.Rect(0, 0, 5, 5), color.Black)
	r.DrawLine(image.Pt(0, 0), image.Pt(1, 1), color.Black)
	r.DrawDottedRect(image.Rect(1, 1, 4, 4), color.Black)
	r.DrawImage(image.Rect(0, 0, 1, 1), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	r.DrawText(image.Rect(0, 0, 50, 13), text.WordWrap, m, "Hi", color.Black)
	r.Restore()

	want := []CommandType{
		CmdSave, CmdTranslate, CmdFillRect, CmdStrokeRect, CmdDrawLine,
		CmdDrawDottedRect, CmdDrawImage, CmdDrawText, CmdRestore,
	}
	if got := r.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types() = %v, want %v", got, want)
	}
	if got := r.Origin(); got != (image.Point{}) {
		t.Errorf("Origin() after Restore = %v, want (0,0)", got)
	}

	dt, ok := r.Commands()[7].(DrawTextCommand)
	if !ok || dt.Text != "Hi" || dt.Measurer != m {
		t.Errorf("command 7 = %#v, want the DrawText call", r.Commands()[7])
	}

	r.Reset()
	if len(r.Commands()) != 0 {
		t.Errorf("Reset left %d commands", len(r.Commands()))
	}
}

func TestRecorderPlayback(t *testing.T) {
	r := NewRecorder()
	r.Save()
	r.Translate(2, 2)
	r.FillRect(image.Rect(0, 0, 2, 2), black)
	r.Restore()
	r.DrawLine(image.Pt(0, 7), image.Pt(7, 7), black)

	direct := NewCanvas(8, 8)
	direct.Save()
	direct.Translate(2, 2)
	direct.FillRect(image.Rect(0, 0, 2, 2), black)
	direct.Restore()
	direct.DrawLine(image.Pt(0, 7), image.Pt(7, 7), black)

	replayed := NewCanvas(8, 8)
	r.Playback(replayed)

	if !reflect.DeepEqual(direct.Image().Pix, replayed.Image().Pix) {
		t.Error("Playback output differs from direct painting")
	}

	copyRec := NewRecorder()
	r.Playback(copyRec)
	if !reflect.DeepEqual(copyRec.Commands(), r.Commands()) {
		t.Error("Playback onto a Recorder did not reproduce the commands")
	}
}
