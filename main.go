package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/minikomi/pianolight/internal/keyboard"
	"github.com/minikomi/pianolight/internal/keystate"
	"github.com/minikomi/pianolight/internal/midiin"
	"github.com/minikomi/pianolight/internal/piano"
)

var winTitle string = piano.Title
var winWidth, winHeight int32 = 1280, 300

// ~60 fps when the renderer can't wait for vsync
const frameMs uint32 = 16

var (
	portIndex   int
	fontPath    string
	releaseMode string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:          "pianolight",
	Short:        "Light up an 88 key piano from a MIDI input and the mouse",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		releaseAll, err := parseRelease(releaseMode)
		if err != nil {
			return err
		}
		return run(releaseAll)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List MIDI input ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPorts(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every note")
	rootCmd.Flags().IntVarP(&portIndex, "port", "p", 0, "MIDI input port number, as printed by list")
	rootCmd.Flags().StringVar(&fontPath, "font", defaultFont, "TTF font for the title text")
	rootCmd.Flags().StringVar(&releaseMode, "release", "all", "what a mouse release clears: all|pointer")
	rootCmd.AddCommand(listCmd)
}

func parseRelease(mode string) (bool, error) {
	switch mode {
	case "all":
		return true, nil
	case "pointer":
		return false, nil
	}
	return false, fmt.Errorf("unknown release mode %q, want all or pointer", mode)
}

func run(releaseAll bool) error {
	keys := keystate.New()

	drv, err := openDriver()
	if err != nil {
		return err
	}
	defer drv.Close()

	in, err := midiin.Open(drv, portIndex, midiin.Listener(keys))
	if err != nil {
		return err
	}
	defer in.Close()

	layout, err := keyboard.New(piano.Keys, piano.Width)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	surface := newSurface(renderer, fontPath)
	defer surface.Close()

	w, h := window.GetSize()
	p := piano.New(layout, keys, piano.CenterOffset(w, h))
	p.ReleaseAll = releaseAll

	running := true
	for running {
		start := sdl.GetTicks()

		var input piano.Input
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.MouseButtonEvent:
				if ev.Button != sdl.BUTTON_LEFT {
					continue
				}
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					input.Pressed = true
					input.X, input.Y = float32(ev.X), float32(ev.Y)
				case sdl.MOUSEBUTTONUP:
					input.Released = true
				}
			case *sdl.QuitEvent:
				logrus.Debug("quit")
				running = false
			}
		}

		p.HandlePointer(input)
		p.Draw(surface)
		renderer.Present()

		if elapsed := sdl.GetTicks() - start; elapsed < frameMs {
			sdl.Delay(frameMs - elapsed)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
