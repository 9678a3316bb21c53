package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ShapePong/audio"
	"ShapePong/config"
	"ShapePong/game"
	"ShapePong/logger"
	"ShapePong/render"
	"ShapePong/terminal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	fs := afero.NewOsFs()
	settings, found, err := config.Load(fs, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	props := logger.Log.Init(fs, settings.ConfigDir)
	logger.Log.Watch()
	logger.Log.Info(logger.ConfigLoadedMsg, logrus.Fields{
		"env":      settings.Env,
		"file":     config.Path(settings.ConfigDir, settings.Env),
		"found":    found,
		"logFile":  props.LogFilename,
		"logLevel": props.Level,
	})

	if settings.Headless {
		err = runHeadless(settings)
	} else {
		err = runTerminal(settings)
	}
	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runTerminal(settings *config.Settings) error {
	scr, err := terminal.Open(settings.Screen.Width, settings.Screen.Height)
	if err != nil {
		logger.Log.Error(logger.ScreenInitFailMsg, logrus.Fields{"error": err.Error()})
		return err
	}
	defer scr.Close()

	kb := terminal.NewKeyboard()
	g, err := game.New(settings, game.Devices{
		Display: scr,
		Text:    scr,
		Input:   kb,
		Buzzer:  &audio.LogBuzzer{},
	})
	if err != nil {
		return err
	}

	kb.Listen(scr.Tcell(), func() {
		scr.Sync()
		g.RequestRedraw()
	})
	go func() {
		select {
		case <-kb.Quit():
		case <-interrupted():
		}
		g.Stop()
	}()

	g.Run()
	return nil
}

func runHeadless(settings *config.Settings) error {
	g, err := game.New(settings, game.Devices{
		Display: render.NewFramebuffer(settings.Screen.Width, settings.Screen.Height),
		Buzzer:  &audio.LogBuzzer{},
	})
	if err != nil {
		return err
	}

	go func() {
		<-interrupted()
		g.Stop()
	}()

	g.Run()
	return nil
}

func interrupted() <-chan os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	return sig
}
