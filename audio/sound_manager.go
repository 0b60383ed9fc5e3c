package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/samber/oops"

	"github.com/lixenwraith/dodge3d/event"
	"github.com/lixenwraith/dodge3d/system"
)

// SoundManager plays gameplay cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	tracker     CueTracker
	initialized bool
	muted       bool
	// play hands a finished streamer to the output, swapped in tests
	play   func(beep.Streamer)
	played [cueCount]int
}

func NewSoundManager(cfg Config) *SoundManager {
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.play = sm.toSpeaker
	return sm
}

// Initialize opens the speaker, no-op when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return oops.In("audio").Code("speaker_init").Wrapf(err, "open speaker at %d Hz", sm.cfg.SampleRate)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
// beep has no speaker close; the device is released at process exit
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play synthesizes and queues a cue, silent cues are skipped
func (sm *SoundManager) Play(cue Cue) {
	if sm.cfg.Volume(cue) <= 0 {
		return
	}
	s := Synthesize(cue, sm.cfg)
	if s == nil {
		return
	}

	sm.mu.Lock()
	if sm.muted {
		sm.mu.Unlock()
		return
	}
	sm.played[cue]++
	play := sm.play
	sm.mu.Unlock()

	play(s)
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// OnHUD is the observer registered with the HUD
func (sm *SoundManager) OnHUD(msg event.Message, state system.HUDState) {
	sm.mu.Lock()
	cue, ok := sm.tracker.Next(msg, state)
	sm.mu.Unlock()
	if ok {
		sm.Play(cue)
	}
}

// Played reports how often a cue was queued
func (sm *SoundManager) Played(cue Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return sm.played[cue]
}

func (sm *SoundManager) toSpeaker(s beep.Streamer) {
	sm.mu.Lock()
	live := sm.initialized
	sm.mu.Unlock()
	if !live {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
