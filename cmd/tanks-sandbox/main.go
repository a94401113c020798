// tanks-sandbox drives one arena in the terminal: a top-down view of the collision world
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-tanks/arena"
	"github.com/lixenwraith/space-tanks/audio"
	"github.com/lixenwraith/space-tanks/game"
)

var (
	arenaFlag = flag.String("arena", "", "arena YAML file, reloaded on save (default: built-in arena)")
	seedFlag  = flag.Uint64("seed", 1, "simulation seed")
	debugFlag = flag.Bool("debug", false, "write logs/sandbox.log")
	traceFlag = flag.Bool("trace", false, "log narrow-phase collision traces (needs -debug)")
	muteFlag  = flag.Bool("mute", false, "start with impact audio off")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadArena(*arenaFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tanks-sandbox: %v\n", err)
		os.Exit(1)
	}
	world, err := game.New(cfg, *seedFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tanks-sandbox: %v\n", err)
		os.Exit(1)
	}
	if *traceFlag {
		world.SetLogger(log.Default())
	}

	audioCfg := audio.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	cues := audio.NewPlayer(audioCfg)
	if err := cues.Start(); err != nil {
		log.Printf("sandbox: audio disabled: %v", err)
	}
	defer cues.Close()

	var watcher *arena.Watcher
	if *arenaFlag != "" {
		if watcher, err = arena.NewWatcher(*arenaFlag); err != nil {
			log.Printf("sandbox: hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tanks-sandbox: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "tanks-sandbox: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing, or the trace is lost in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSANDBOX CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sb := newSandbox(screen, world, cues, *arenaFlag)
	sb.run(watcher)
	screen.Fini()
}

func loadArena(path string) (*arena.Arena, error) {
	if path == "" {
		return arena.Default()
	}
	return arena.Load(path)
}
