package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logxi "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/keyframe/player"
	"github.com/matt-g-everett/keyframe/script"
)

var (
	logger = logxi.New("keyframe")

	configPath = flag.String("config", "scene.yaml", "YAML scene file.")
	verbose    = flag.Bool("v", false, "Log every executed whole frame.")
	trace      = flag.Bool("trace", false, "Print every target after each executed frame.")
	loops      = flag.Int("loops", -1, "Override the scene's loop count (0 loops forever).")
	dumpPath   = flag.String("dump", "", "Append every paletted target's encoded palette to this file after each frame.")
)

type app struct {
	Script *script.Script
	Scene  *script.Scene
	Player *player.Player

	dump    *bufio.Writer
	dumpErr error
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	a.Script = s

	if *loops >= 0 {
		a.Script.Playback.Loops = *loops
	}

	a.Scene, err = s.Build()
	return err
}

func (a *app) printTargets(frame float64) {
	for _, name := range a.Scene.Names {
		obj, err := a.Scene.Target(name)
		if err != nil {
			fmt.Printf("%8.3f %-12s %v\n", frame, name, err)
			continue
		}
		fmt.Printf("%8.3f %-12s %v\n", frame, name, obj)
	}
}

func (a *app) onFrame(frame float64) {
	if *trace {
		a.printTargets(frame)
	}
	if *verbose && frame == float64(int(frame)) {
		logger.Debug("frame", "frame", frame)
	}
	if a.dump != nil && a.dumpErr == nil {
		if a.dumpErr = a.Scene.WritePalettes(a.dump); a.dumpErr != nil {
			logger.Error("dump", "frame", frame, "err", a.dumpErr)
		}
	}
}

func (a *app) openDump(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	a.dump = bufio.NewWriter(f)
	return func() error {
		if err := a.dump.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func (a *app) run() error {
	a.Player = player.NewPlayer(a.Script.Playback, a.Scene.Scheduler)
	a.Player.OnFrame = a.onFrame

	quitC := make(chan struct{})
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigC
		close(quitC)
	}()

	logger.Info("playing", "entries", a.Scene.Scheduler.Len(), "last_frame", a.Scene.Scheduler.LastFrame(),
		"frames", a.Script.Playback.Frames, "subframes", a.Script.Playback.Subframes, "loops", a.Script.Playback.Loops)
	return a.Player.Run(quitC)
}

func main() {
	flag.Parse()

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		logger.Error("config", "path", *configPath, "err", err)
		os.Exit(1)
	}

	if *dumpPath != "" {
		closeDump, err := a.openDump(*dumpPath)
		if err != nil {
			logger.Error("dump", "path", *dumpPath, "err", err)
			os.Exit(1)
		}
		defer func() {
			if err := closeDump(); err != nil {
				logger.Error("dump", "path", *dumpPath, "err", err)
			}
		}()
	}

	if err := a.run(); err != nil {
		logger.Error("playback", "err", err)
		os.Exit(1)
	}
	if a.dumpErr != nil {
		logger.Warn("dump incomplete", "path", *dumpPath, "err", a.dumpErr)
	}

	for _, name := range a.Scene.Names {
		obj, err := a.Scene.Target(name)
		if err != nil {
			logger.Error("final", "target", name, "err", err)
			continue
		}
		logger.Info("final", "target", name, "state", fmt.Sprint(obj))
	}
}
