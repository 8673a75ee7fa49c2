package gui

import (
	"testing"
	"time"

	"github.com/tesseract/screenflow/internal/model"
)

func TestHeadless_OpenCloseWindow(t *testing.T) {
	h := NewHeadless()

	if err := h.OpenWindow("initial", model.Layout{Title: "initial_title"}); err != nil {
		t.Fatalf("OpenWindow error: %v", err)
	}
	if !h.IsOpen("initial") {
		t.Error("Expected window 'initial' to be open")
	}

	if err := h.CloseWindow("initial"); err != nil {
		t.Fatalf("CloseWindow error: %v", err)
	}
	if h.IsOpen("initial") {
		t.Error("Expected window 'initial' to be closed")
	}

	if err := h.CloseWindow("initial"); err == nil {
		t.Error("Expected error closing a window that is not open")
	}
}

func TestHeadless_PollTimeout(t *testing.T) {
	h := NewHeadless()

	start := time.Now()
	_, ok := h.Poll(20 * time.Millisecond)
	if ok {
		t.Error("Expected Poll to time out with no events")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Poll returned before the timeout elapsed")
	}
}

func TestHeadless_PostAndPoll(t *testing.T) {
	h := NewHeadless()

	want := model.Event{Window: "initial", Key: "-go_to_state_a-", Values: model.Values{}}
	h.PostEvent(want)

	got, ok := h.Poll(time.Second)
	if !ok {
		t.Fatal("Expected an event, got timeout")
	}
	if got.Window != want.Window || got.Key != want.Key {
		t.Errorf("Poll returned %+v, expected %+v", got, want)
	}
}

func TestHeadless_UpdateWidget(t *testing.T) {
	h := NewHeadless()

	if err := h.UpdateWidget("initial", "download_progress", 50); err == nil {
		t.Error("Expected error updating a widget of an unopened window")
	}

	if err := h.OpenWindow("initial", model.Layout{}); err != nil {
		t.Fatalf("OpenWindow error: %v", err)
	}
	if err := h.UpdateWidget("initial", "download_progress", 50); err != nil {
		t.Fatalf("UpdateWidget error: %v", err)
	}

	v, ok := h.WidgetValue("initial", "download_progress")
	if !ok {
		t.Fatal("Expected widget value to be recorded")
	}
	if v.(int) != 50 {
		t.Errorf("Expected widget value 50, got %v", v)
	}
}
