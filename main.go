package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pstuifzand/tui-docview/internal/app"
	"github.com/pstuifzand/tui-docview/internal/config"
	"github.com/pstuifzand/tui-docview/internal/socket"
)

func main() {
	logFile, err := os.Create("docview.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	themeName := flag.String("theme", "", "Theme name, overriding the configured one")
	gotoHeading := flag.String("goto", "", "Scroll a running docview instance to a heading")
	openFile := flag.String("open", "", "Open a file in a running docview instance")
	flag.Parse()

	// Remote control commands talk to a running instance and exit
	if *gotoHeading != "" || *openFile != "" {
		if err := sendRemoteCommand(*gotoHeading, *openFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Command sent")
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: docview [options] <file.md>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}

	application, err := app.NewApp(args[0], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// sendRemoteCommand sends a goto or open command to a running docview instance
func sendRemoteCommand(gotoHeading, openFile string) error {
	socketPath, pid, err := socket.FindRunningInstance()
	if err != nil {
		return fmt.Errorf("no running docview instance found: %w", err)
	}

	log.Printf("Found running instance at PID %d: %s", pid, socketPath)

	client, err := socket.NewClient(socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	var response *socket.Response
	if gotoHeading != "" {
		response, err = client.SendGoto(gotoHeading)
	} else {
		response, err = client.SendOpen(openFile)
	}
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}

	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}

	return nil
}
