package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume    = 0.58
	maxSfxVoices = 4
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundCrash SoundKind = iota
	SoundWin
	SoundLose
	SoundRespawn
	SoundTurn
)

// Audio plays procedurally generated sound effects through oto.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	voices int32
	cache  map[SoundKind][]byte
}

// NewAudio opens the output device. Samples are synthesized up front.
func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, cache: make(map[SoundKind][]byte)}
	for _, k := range []SoundKind{SoundCrash, SoundWin, SoundLose, SoundRespawn, SoundTurn} {
		a.cache[k] = generateSound(k)
	}
	return a, nil
}

// Play starts a sound effect without blocking. A nil Audio is silent.
func (a *Audio) Play(kind SoundKind) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.cache[kind]
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&a.voices, 1) > maxSfxVoices {
		atomic.AddInt32(&a.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCrash:
		return genCrash()
	case SoundWin:
		return genWin()
	case SoundLose:
		return genLose()
	case SoundRespawn:
		return genRespawn()
	case SoundTurn:
		return genTurn()
	}
	return nil
}

// genCrash: electric zap sweeping down into a bandpassed noise burst.
func genCrash() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x7EC0)
	lp1, lp2 := 0.0, 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		freq := 1800 * math.Pow(60.0/1800.0, p*1.4)
		phase += 2 * math.Pi * freq / SampleRate
		zap := math.Sin(phase+2.5*math.Sin(phase*3.01)) * math.Exp(-p*6) * 0.45

		raw := lcg(&seed)
		lp1 = lp1*0.7 + raw*0.3
		lp2 = lp2*0.97 + raw*0.03
		body := (lp1 - lp2) * math.Exp(-p*5) * 0.5

		crack := 0.0
		if p < 0.03 {
			crack = raw * (1 - p/0.03) * 0.7
		}
		putStereoF32(buf, i, softSat((zap+body+crack)*0.85))
	}
	return buf
}

// genWin: ascending FM bell staircase.
func genWin() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLose: slow descending minor chord, staggered.
func genLose() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRespawn: rising synth swell.
func genRespawn() []byte {
	n := int(0.30 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.2, 0.4, 0.3, 0.3)
		freq := 220 + 440*p*p
		s := fm(t, freq, 2.0, 1.5*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTurn: crisp click + brief high tone.
func genTurn() []byte {
	n := SampleRate * 45 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.22
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
