package sim

import (
	"context"
	"time"
)

// Loop drives a Simulation through a Script, either as fast as possible or
// paced at the tick rate.
type Loop struct {
	sim      *Simulation
	script   *Script
	tickRate int
	realtime bool
}

func NewLoop(sim *Simulation, script *Script, tickRate int, realtime bool) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		sim:      sim,
		script:   script,
		tickRate: tickRate,
		realtime: realtime,
	}
}

// Run steps the script to completion, calling onFrame after every tick. It
// returns the number of ticks run and ctx.Err() if cancelled early.
func (l *Loop) Run(ctx context.Context, onFrame func(Frame)) (uint64, error) {
	var ticker *time.Ticker
	if l.realtime {
		ticker = time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
	}

	for t := uint64(0); t < l.script.Ticks; t++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return t, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return t, err
		}

		frame := l.sim.Step(l.script.InputAt(t))
		if onFrame != nil {
			onFrame(frame)
		}
	}
	return l.script.Ticks, nil
}
