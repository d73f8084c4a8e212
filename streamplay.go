// Copyright 2023 The STMPS Authors
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"

	"github.com/spezifisch/streamplay/events"
	"github.com/spezifisch/streamplay/logger"
	"github.com/spezifisch/streamplay/mpvplayer"
	"github.com/spezifisch/streamplay/playlist"
	"github.com/spezifisch/streamplay/remote"
	"github.com/spezifisch/streamplay/screen"
	tviewcommand "github.com/spezifisch/tview-command"
	"github.com/spf13/viper"
)

var osExit = os.Exit  // A variable to allow mocking os.Exit in tests
var headlessMode bool // This can be set to true during tests
var testMode bool     // This can be set to true during tests, too

const DEVELOPMENT = "development"

// Name is the program name shown in the status bar
var Name string = "streamplay"

// Version is the program version; usually set from BuildInfo
var Version string = DEVELOPMENT

func setConfigDefaults() {
	viper.SetDefault("playlist.url", "http://www.feedyourmusic.com/api/v1/editors_pick")
	viper.SetDefault("stream.url", "http://pianosolo.streamguys.net/live.m3u")
	viper.SetDefault("stream.title", "Aaron")
	viper.SetDefault("stream.artist", "Celine Dion")
	viper.SetDefault("stream.album-art-uri", "https://unsplash.it/300/300")
	viper.SetDefault("ui.seek-step", 1)
	viper.SetDefault("ui.log-lines", 100)
	viper.SetDefault("keys.config", "")
}

// readConfig loads the optional config file. A missing file in the default
// locations is not an error; a missing file given with --config is.
func readConfig(configFile *string) error {
	setConfigDefaults()

	if configFile != nil && *configFile != "" {
		// use custom config file
		viper.SetConfigFile(*configFile)
	} else {
		// lookup default dirs
		viper.SetConfigName("streamplay")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/streamplay")
		viper.AddConfigPath(".")
	}

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return fmt.Errorf("Config file error: %w", err)
	}

	if viper.GetString("playlist.url") == "" {
		return fmt.Errorf("Config property %s must not be empty", "playlist.url")
	}

	return nil
}

func streamFromConfig() screen.Stream {
	return screen.Stream{
		Url: viper.GetString("stream.url"),
		Metadata: playlist.Metadata{
			Title:       viper.GetString("stream.title"),
			Artist:      viper.GetString("stream.artist"),
			AlbumArtUri: viper.GetString("stream.album-art-uri"),
		},
	}
}

// initCommandHandler sets up tview-command logging and returns the key
// bindings, taken from the keybinding file in the config if there is one.
func initCommandHandler(logger *logger.Logger) *KeyMap {
	tviewcommand.SetLogHandler(func(msg string) {
		logger.Print(msg)
	})

	configPath := viper.GetString("keys.config")
	if configPath == "" {
		return NewKeyMap()
	}

	config, err := tviewcommand.LoadConfig(configPath)
	if err != nil || config == nil {
		logger.PrintError("Failed to load command-shortcut config", err)
	}

	keys, err := LoadKeyMap(configPath)
	if err != nil {
		logger.PrintError("keys.config", err)
		return NewKeyMap()
	}
	return keys
}

// printPlaylist fetches the playlist once and prints it to stdout.
func printPlaylist(fetcher playlist.Fetcher) error {
	pl, err := fetcher.Fetch()
	if err != nil {
		return err
	}

	fmt.Printf("%-27s: %d\n", "Entries", len(pl))
	for i, entry := range pl {
		fmt.Printf("  %3d %s\n", i, formatEntryForList(entry))
	}
	return nil
}

// return codes:
// 0 - OK
// 1 - generic errors
// 2 - main config errors
func main() {
	help := flag.Bool("help", false, "Print usage")
	enableMpris := flag.Bool("mpris", false, "Enable MPRIS2")
	list := flag.Bool("playlist", false, "print the playlist and exit")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	configFile := flag.String("config", "", "use config `file`")
	version := flag.Bool("version", false, "print the streamplay version and exit")

	flag.Parse()
	if *help {
		fmt.Printf("USAGE: %s <args>\n", os.Args[0])
		flag.Usage()
		osExit(0)
		return
	}
	if Version == DEVELOPMENT {
		if bi, ok := debug.ReadBuildInfo(); ok {
			Version = bi.Main.Version
		}
	}
	if *version {
		fmt.Printf("streamplay %s", Version)
		osExit(0)
		return
	}

	// cpu/memprofile code straight from https://pkg.go.dev/runtime/pprof
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := readConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read configuration: %v\n", err)
		osExit(2)
		return
	}

	logger := logger.Init()
	keys := initCommandHandler(logger)

	client := playlist.NewClient(viper.GetString("playlist.url"), logger)

	if *list {
		if err := printPlaylist(client); err != nil {
			fmt.Printf("Error fetching playlist: %s\n", err)
			osExit(1)
			return
		}
		osExit(0)
		return
	}

	if testMode {
		fmt.Println("Running in test mode for testing.")
		osExit(0)
		return
	}

	emitter := events.NewEmitter()

	// init mpv engine
	player, err := mpvplayer.NewPlayer(emitter, logger)
	if err != nil {
		fmt.Println("Unable to initialize mpv. Is mpv installed?")
		osExit(1)
		return
	}

	if headlessMode {
		fmt.Println("Running in headless mode for testing.")
		osExit(0)
		return
	}

	ui := InitGui(player, emitter, client, logger, GuiSettings{
		Stream:   streamFromConfig(),
		SeekStep: viper.GetInt("ui.seek-step"),
		LogLines: viper.GetInt("ui.log-lines"),
		Keys:     keys,
	})

	// init mpris2 player control (linux only but fails gracefully on other systems)
	if *enableMpris {
		mprisPlayer, err := remote.RegisterMprisPlayer(ui.screen, emitter, ui.dispatch, logger)
		if err != nil {
			fmt.Printf("Unable to register MPRIS with DBUS: %s\n", err)
			fmt.Println("Try running without MPRIS")
			osExit(1)
			return
		}
		defer mprisPlayer.Close()

		player.OnSongChange(func(track *mpvplayer.Track) {
			mprisPlayer.OnSongChange(track)
		})
	}

	// run main loop
	if err := ui.Run(); err != nil {
		panic(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		runtime.GC()    // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
