package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"angle-gauge.klederson.com/internal/app"
	"angle-gauge.klederson.com/internal/config"
	"angle-gauge.klederson.com/internal/logging"
	"angle-gauge.klederson.com/internal/sensor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagPort     string
	flagBaud     int
	flagDemo     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "angle-gauge",
		Short: "Angle Gauge - live terminal dial and chart for a serial rotary sensor",
		Long: `Angle Gauge reads "Degrees: <value>" lines from a rotary angle sensor
(AS5600 or similar) over a serial port and shows the latest reading on a
polar dial next to a scrolling chart of the last 100 samples.

If --port is omitted you are asked for one at startup.
Use --demo to run against a simulated sensor without hardware.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&flagPort, "port", "", "Serial port (e.g. COM4 or /dev/ttyUSB0)")
	rootCmd.Flags().IntVar(&flagBaud, "baud", config.DefaultBaud, "Serial baud rate")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run against a simulated sensor (no hardware required)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.Init(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer cleanup()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	port := flagPort
	switch {
	case flagDemo:
		port = "demo"
	case port == "" && interactive:
		port = app.PromptPort(os.Stdin, os.Stdout, config.DefaultPort())
	case port == "":
		port = config.DefaultPort()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := app.NewSession(opener(port, flagBaud, flagDemo))
	defer func() {
		_ = session.Shutdown()
	}()

	if !flagDemo {
		fmt.Fprintf(os.Stderr, "Connecting to %s at %d baud...\n", port, flagBaud)
	}
	if err := session.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Check that the sensor is plugged in and the port name is right.")
		fmt.Fprintln(os.Stderr, "  ./angle-gauge --port /dev/ttyACM0")
		fmt.Fprintln(os.Stderr, "  ./angle-gauge --demo    (demo mode, no hardware needed)")
		if interactive {
			app.WaitForEnter(os.Stdin, os.Stderr, "\nPress Enter to exit...")
		}
		return err
	}
	if err := session.StartReader(ctx); err != nil {
		return err
	}

	model := app.New(session, port, flagBaud)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("Display loop failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	slog.Info("Shutting down")
	return nil
}

func opener(port string, baud int, demo bool) app.Opener {
	if demo {
		return func(context.Context) (sensor.Port, error) {
			return sensor.NewMockPort(config.DemoInterval), nil
		}
	}
	return func(ctx context.Context) (sensor.Port, error) {
		return sensor.OpenSerial(ctx, port, baud, config.SettleDelay)
	}
}
