package audio

import (
	"testing"

	"github.com/rs/zerolog"
)

func cueLength(c Cue) int {
	n := 0
	for _, t := range cueTones[c] {
		n += sampleRate.N(t.duration)
	}
	return n
}

func TestCueStreamersAreFinite(t *testing.T) {
	for _, c := range []Cue{CueContact, CueCheckpoint, CueRestore, CuePortal} {
		t.Run(c.String(), func(t *testing.T) {
			s := newCueStreamer(c, 1)
			if s == nil {
				t.Fatal("expected streamer")
			}
			out := drain(s)
			if len(out) != cueLength(c) {
				t.Errorf("streamed %d samples, want %d", len(out), cueLength(c))
			}
			for i, v := range out {
				if v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %f", i, v)
				}
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if s := newCueStreamer(Cue(99), 1); s != nil {
		t.Error("expected nil streamer for unknown cue")
	}
	if got := Cue(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}

func TestCuePlayerSilentWithoutDevice(t *testing.T) {
	p := NewCuePlayer(0.5, zerolog.Nop())
	if p.Enabled() {
		t.Fatal("player enabled before Initialize")
	}

	// Must not block or panic without a speaker
	p.Play(CueContact)
	p.Play(Cue(99))
	p.Cleanup()

	if p.Enabled() {
		t.Error("player enabled after Cleanup")
	}
}
