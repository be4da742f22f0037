package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/DmmDGM/apcsa-rhythm/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate beep.SampleRate = 44100
	ToneLength                 = 80 * time.Millisecond
	Volume                     = 0.3
)

// Frequencies in Hz, misses stay silent
var tones = map[game.JudgementKind]float64{
	game.Perfect: 1046.5,
	game.Good:    784,
	game.Ok:      523.25,
}

// BeepPlayer mixes a short sine tone into the speaker for every hit.
type BeepPlayer struct {
	mixer beep.Mixer
}

func NewBeepPlayer() (*BeepPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/60)); nil != err {
		return nil, fmt.Errorf("unable to initialise speaker: %w", err)
	}
	p := &BeepPlayer{}
	speaker.Play(&p.mixer)
	return p, nil
}

func (p *BeepPlayer) Hit(kind game.JudgementKind) {
	freq, ok := tones[kind]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(Tone(SampleRate, freq, ToneLength))
	speaker.Unlock()
}

func (p *BeepPlayer) Close() error {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	return nil
}

// Tone is a sine wave fading linearly to silence over d
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			fade := 1 - float64(pos)/float64(total)
			v := Volume * fade * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
