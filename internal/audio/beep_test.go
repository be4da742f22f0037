package audio

import (
	"math"
	"testing"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
)

func TestTone(t *testing.T) {
	s := Tone(SampleRate, 440, 10*time.Millisecond)
	expected := SampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		for _, sample := range buf[:n] {
			if math.Abs(sample[0]) > Volume || sample[0] != sample[1] {
				t.Fatalf("bad sample %v", sample)
			}
		}
		total += n
	}
	if total != expected {
		t.Logf("expected %v samples, got %v", expected, total)
		t.Fail()
	}
}

func TestMissIsSilent(t *testing.T) {
	if _, ok := tones[game.Miss]; ok {
		t.Log("misses should not have a tone")
		t.Fail()
	}
	Silent{}.Hit(game.Perfect)
	if nil != (Silent{}).Close() {
		t.Fail()
	}
}
