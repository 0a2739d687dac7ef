package ui

import (
	"strings"
	"testing"
)

func forcedHeadless(t *testing.T) *HeadlessManager {
	t.Helper()
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("IsHeadless = false after ForceHeadless(true)")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("IsHeadless = true after ForceHeadless(false)")
	}
}

func TestHeadlessProgressBar(t *testing.T) {
	var buf strings.Builder
	p := newProgressImpl(DefaultTheme(), forcedHeadless(t), &buf)

	bar := p.Start("installing", 3)
	bar.SetTitle("agent-os/standards/style.md")
	bar.Increment(1)
	bar.SetTitle("agent-os/standards/naming.md")
	bar.Increment(1)
	bar.Done()

	out := buf.String()
	if !strings.Contains(out, "[1/3] agent-os/standards/style.md") {
		t.Errorf("missing first log line:\n%s", out)
	}
	if !strings.Contains(out, "[2/3] agent-os/standards/naming.md") {
		t.Errorf("missing second log line:\n%s", out)
	}
	if !strings.Contains(out, "[3/3]") {
		t.Errorf("Done must report completion:\n%s", out)
	}
}

func TestHeadlessProgressBarClampsOverrun(t *testing.T) {
	var buf strings.Builder
	p := newProgressImpl(DefaultTheme(), forcedHeadless(t), &buf)

	bar := p.Start("installing", 2)
	bar.Increment(5)

	if !strings.Contains(buf.String(), "[2/2]") {
		t.Errorf("overrun not clamped:\n%s", buf.String())
	}
}

func TestConfirmerShortCircuits(t *testing.T) {
	t.Run("assume_yes", func(t *testing.T) {
		c := NewConfirmer(forcedHeadless(t), true)
		ok, err := c.Confirm("Proceed?", "")
		if err != nil {
			t.Fatalf("Confirm error: %v", err)
		}
		if !ok {
			t.Error("assumeYes must auto-confirm")
		}
	})

	t.Run("headless_declines", func(t *testing.T) {
		c := NewConfirmer(forcedHeadless(t), false)
		ok, err := c.Confirm("Proceed?", "")
		if err != nil {
			t.Fatalf("Confirm error: %v", err)
		}
		if ok {
			t.Error("headless mode without assumeYes must decline")
		}
	})
}
