package synth

import (
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func samples(buf []byte) []int16 {
	out := make([]int16, len(buf)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return out
}

func TestRenderLength(t *testing.T) {
	notes := []Note{
		{Freq: 440, Dur: 10 * time.Millisecond},
		Rest(20 * time.Millisecond),
	}

	buf := Render(notes, Square, 0.5)

	want := (Frames(10*time.Millisecond) + Frames(20*time.Millisecond)) * bytesPerFrame
	if len(buf) != want {
		t.Errorf("len = %d, want %d", len(buf), want)
	}
}

func TestRestIsSilent(t *testing.T) {
	buf := Render([]Note{Rest(50 * time.Millisecond)}, Sine, 1)

	for i, s := range samples(buf) {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestRenderRespectsGain(t *testing.T) {
	tests := []struct {
		wave Wave
		gain float64
	}{
		{Square, 0.5},
		{Triangle, 0.25},
		{Sine, 1},
		{Square, 3}, // clamped to 1
	}

	for _, tt := range tests {
		buf := Render([]Note{{Freq: 330, Dur: 100 * time.Millisecond}}, tt.wave, tt.gain)
		limit := int(math.Min(tt.gain, 1)*math.MaxInt16) + 1

		peak := 0
		for _, s := range samples(buf) {
			peak = max(peak, int(math.Abs(float64(s))))
		}
		if peak > limit {
			t.Errorf("wave %d gain %v: peak %d exceeds %d", tt.wave, tt.gain, peak, limit)
		}
		if peak == 0 {
			t.Errorf("wave %d gain %v: silent output", tt.wave, tt.gain)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	buf := Render([]Note{{Freq: 440, Dur: 100 * time.Millisecond}}, Square, 1)
	s := samples(buf)

	if s[0] != 0 || s[1] != 0 {
		t.Errorf("first frame = (%d, %d), want silence", s[0], s[1])
	}
	if last := s[len(s)-1]; math.Abs(float64(last)) > 0.01*math.MaxInt16 {
		t.Errorf("last sample = %d, want near silence", last)
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	s := samples(Render([]Note{{Freq: 523, Dur: 20 * time.Millisecond}}, Triangle, 0.8))

	for i := 0; i+1 < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("frame %d: left %d != right %d", i/2, s[i], s[i+1])
		}
	}
}

func TestMixClips(t *testing.T) {
	a := make([]byte, 4)
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(a, uint16(int16(30000)))
	binary.LittleEndian.PutUint16(b, uint16(int16(30000)))
	quiet := int16(-5)
	binary.LittleEndian.PutUint16(b[4:], uint16(quiet))

	out := samples(Mix(a, b))

	if len(out) != 4 {
		t.Fatalf("len = %d samples, want 4", len(out))
	}
	if out[0] != math.MaxInt16 {
		t.Errorf("out[0] = %d, want clipped %d", out[0], math.MaxInt16)
	}
	if out[2] != -5 {
		t.Errorf("out[2] = %d, want -5", out[2])
	}
}
