// Package synth renders short note sequences into PCM so the graphical host
// can play music and sound cues without shipping audio files.
//
// Output is signed 16-bit little-endian stereo at SampleRate, the format
// ebiten's audio players consume.
package synth

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the output rate in frames per second.
const SampleRate = 44100

// bytesPerFrame is two channels of two bytes each.
const bytesPerFrame = 4

// Envelope ramps that keep note boundaries free of clicks.
const (
	attack  = 5 * time.Millisecond
	release = 20 * time.Millisecond
)

// Wave is an oscillator shape.
type Wave int

const (
	Square Wave = iota
	Triangle
	Sine
)

// Note is one tone of a sequence. A zero frequency is a rest.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Rest returns a silent note of length d.
func Rest(d time.Duration) Note {
	return Note{Dur: d}
}

// Frames returns the number of PCM frames a note of length d occupies.
func Frames(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// Render synthesizes notes back to back. gain scales the peak amplitude and
// is clamped to [0, 1].
func Render(notes []Note, wave Wave, gain float64) []byte {
	gain = math.Max(0, math.Min(1, gain))

	total := 0
	for _, n := range notes {
		total += Frames(n.Dur)
	}

	buf := make([]byte, total*bytesPerFrame)
	off := 0
	for _, n := range notes {
		frames := Frames(n.Dur)
		if n.Freq > 0 {
			renderNote(buf[off:off+frames*bytesPerFrame], n.Freq, frames, wave, gain)
		}
		off += frames * bytesPerFrame
	}
	return buf
}

// Mix sums two buffers of the same format, clipping at full scale.
// The result has the length of the longer input.
func Mix(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	copy(out, a)

	for i := 0; i+1 < len(b); i += 2 {
		x := int32(int16(binary.LittleEndian.Uint16(out[i:])))
		y := int32(int16(binary.LittleEndian.Uint16(b[i:])))
		sum := max(min(x+y, math.MaxInt16), math.MinInt16)
		binary.LittleEndian.PutUint16(out[i:], uint16(int16(sum)))
	}
	return out
}

func renderNote(dst []byte, freq float64, frames int, wave Wave, gain float64) {
	attackFrames := float64(Frames(attack))
	releaseFrames := float64(Frames(release))

	for i := 0; i < frames; i++ {
		phase := math.Mod(float64(i)*freq/SampleRate, 1)

		env := 1.0
		if f := float64(i); f < attackFrames {
			env = f / attackFrames
		}
		if left := float64(frames - i); left < releaseFrames {
			env = math.Min(env, left/releaseFrames)
		}

		v := int16(oscillate(wave, phase) * env * gain * math.MaxInt16)
		binary.LittleEndian.PutUint16(dst[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(dst[i*bytesPerFrame+2:], uint16(v))
	}
}

// oscillate returns the wave value in [-1, 1] at phase in [0, 1).
func oscillate(w Wave, phase float64) float64 {
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	default:
		if phase < 0.5 {
			return 1
		}
		return -1
	}
}
