// Package player paces a Scheduler through frames from a render loop.
package player

import (
	"time"

	"github.com/matt-g-everett/keyframe/animation"
)

// Config describes one playback loop.
type Config struct {
	// Frames is the number of whole frames per direction.
	Frames int `yaml:"frames"`
	// Subframes divides each frame for smoother motion; 0 is treated as 1.
	Subframes int `yaml:"subframes"`
	// DelayMs is the pause between executed subframes.
	DelayMs int `yaml:"delay_ms"`
	// Reverse plays the loop backward after playing it forward.
	Reverse bool `yaml:"reverse"`
	// Loops is the number of loops Run performs; 0 runs until stopped.
	Loops int `yaml:"loops"`
	// LoopDelayMs is the pause before each loop after the first.
	LoopDelayMs int `yaml:"loop_delay_ms"`
}

// Delay returns DelayMs as a Duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// LoopDelay returns LoopDelayMs as a Duration.
func (c Config) LoopDelay() time.Duration {
	return time.Duration(c.LoopDelayMs) * time.Millisecond
}

// Sequence returns the frame values of one loop. Whole frames are produced
// exactly, so entries starting on integer frames always snapshot.
func (c Config) Sequence() []float64 {
	sub := c.Subframes
	if sub <= 0 {
		sub = 1
	}
	if c.Frames <= 0 {
		return []float64{}
	}

	n := c.Frames * sub
	if c.Reverse {
		n *= 2
	}
	seq := make([]float64, 0, n)
	for f := 0; f < c.Frames; f++ {
		for s := 0; s < sub; s++ {
			seq = append(seq, float64(f)+float64(s)/float64(sub))
		}
	}
	if c.Reverse {
		for f := 0; f < c.Frames; f++ {
			for s := 0; s < sub; s++ {
				seq = append(seq, float64(c.Frames)-(float64(f)+float64(s)/float64(sub)))
			}
		}
	}
	return seq
}

// Player executes a Scheduler over the frames described by its Config.
type Player struct {
	config    Config
	scheduler *animation.Scheduler

	// OnFrame, when set, runs after every executed frame.
	OnFrame func(frame float64)
}

// NewPlayer creates a Player.
func NewPlayer(config Config, scheduler *animation.Scheduler) *Player {
	p := new(Player)
	p.config = config
	p.scheduler = scheduler
	return p
}

// Config returns the playback configuration.
func (p *Player) Config() Config {
	return p.config
}

// Step executes a single frame.
func (p *Player) Step(frame float64) error {
	if err := p.scheduler.ExecuteFrame(frame); err != nil {
		return err
	}
	if p.OnFrame != nil {
		p.OnFrame(frame)
	}
	return nil
}

// Run plays the configured loops, waiting Delay between frames and LoopDelay
// between loops. It returns early when quitC is closed or a frame fails.
func (p *Player) Run(quitC <-chan struct{}) error {
	seq := p.config.Sequence()
	if len(seq) == 0 {
		return nil
	}

	var tick <-chan time.Time
	if d := p.config.Delay(); d > 0 {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		tick = ticker.C
	}

	for loop := 0; p.config.Loops == 0 || loop < p.config.Loops; loop++ {
		if d := p.config.LoopDelay(); loop > 0 && d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-quitC:
				timer.Stop()
				return nil
			}
		}

		for _, frame := range seq {
			select {
			case <-quitC:
				return nil
			default:
			}

			if err := p.Step(frame); err != nil {
				return err
			}

			if tick != nil {
				select {
				case <-tick:
				case <-quitC:
					return nil
				}
			}
		}
	}
	return nil
}
