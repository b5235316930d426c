package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vmath-kit/vmath"
)

// ChokeNoise streams endless noise drawn from vmath.Random. choke 1 is white
// noise; higher values concentrate samples near zero and soften the hiss.
// Gain eases toward its target each sample to avoid clicks on change.
type ChokeNoise struct {
	mu         sync.Mutex
	rng        vmath.Source
	choke      int
	gain       float64
	targetGain float64
	easeSpeed  float64
}

// NewChokeNoise creates a silent noise streamer; raise it with SetGain
func NewChokeNoise(rng vmath.Source, choke int) *ChokeNoise {
	if choke < 1 {
		choke = 1
	}
	return &ChokeNoise{
		rng:       rng,
		choke:     choke,
		easeSpeed: 0.001,
	}
}

// SetChoke changes the sample distribution, values below 1 are raised to 1
func (n *ChokeNoise) SetChoke(choke int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if choke < 1 {
		choke = 1
	}
	n.choke = choke
}

func (n *ChokeNoise) Choke() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.choke
}

// SetGain sets the level the stream eases toward, 0..1
func (n *ChokeNoise) SetGain(gain float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targetGain = min(max(gain, 0), 1)
}

func (n *ChokeNoise) Gain() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.gain
}

func (n *ChokeNoise) Stream(samples [][2]float64) (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range samples {
		vmath.EaseProp(&n.gain, n.targetGain, n.easeSpeed)
		val := vmath.Random(n.rng, -1, 1, n.choke) * n.gain
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (n *ChokeNoise) Err() error { return nil }

var _ beep.Streamer = (*ChokeNoise)(nil)
