package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/config"
	"github.com/shenikar/dispatch_console/internal/intake"
	"github.com/shenikar/dispatch_console/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "intake",
	Short:         "Forward citizen reports to the dispatch service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd, submitCmd)

	runCmd.Flags().String("lock", "", "lock file path (default INTAKE_LOCK_PATH)")

	submitCmd.Flags().String("category", "", "report category (required)")
	submitCmd.Flags().Float64("lat", 0, "latitude (required)")
	submitCmd.Flags().Float64("lng", 0, "longitude (required)")
	submitCmd.Flags().String("photo", "", "photo file id")
	submitCmd.Flags().String("video", "", "video file id")
	submitCmd.Flags().String("voice", "", "voice file id")
	_ = submitCmd.MarkFlagRequired("category")
	_ = submitCmd.MarkFlagRequired("lat")
	_ = submitCmd.MarkFlagRequired("lng")
}

func setup() (*config.Config, *logrus.Logger, *intake.Forwarder, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)
	api := collaborator.NewClient(cfg.CollaboratorURL, cfg.HTTPTimeout)
	return cfg, log, intake.NewForwarder(api, log), nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read reports as JSON lines from stdin and forward them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, fwd, err := setup()
		if err != nil {
			return err
		}

		lockPath, _ := cmd.Flags().GetString("lock")
		if lockPath == "" {
			lockPath = cfg.IntakeLockPath
		}
		lock, err := intake.AcquireLock(lockPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				log.WithError(err).Warn("Failed to release lock")
			}
		}()
		log.WithField("lock", lock.Path()).Info("Intake started")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return forwardLines(ctx, log, fwd, bufio.NewScanner(cmd.InOrStdin()))
	},
}

func forwardLines(ctx context.Context, log *logrus.Logger, fwd *intake.Forwarder, sc *bufio.Scanner) error {
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var s intake.Submission
		if err := json.Unmarshal(line, &s); err != nil {
			log.WithError(err).Warn("Skipping malformed report line")
			continue
		}
		r, _, err := fwd.Submit(ctx, s)
		if err != nil {
			// Обращение принято, но не переслано: оператор увидит его в логе
			log.WithError(err).WithField("report_id", r.ReportID).Error("Report not forwarded")
		}
	}
	return sc.Err()
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Forward a single report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, fwd, err := setup()
		if err != nil {
			return err
		}

		category, _ := cmd.Flags().GetString("category")
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		photo, _ := cmd.Flags().GetString("photo")
		video, _ := cmd.Flags().GetString("video")
		voice, _ := cmd.Flags().GetString("voice")

		r, res, err := fwd.Submit(cmd.Context(), intake.Submission{
			Category:    category,
			Latitude:    &lat,
			Longitude:   &lng,
			PhotoFileID: photo,
			VideoFileID: video,
			VoiceFileID: voice,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report %s registered as incident %s.\n", r.ReportID, res.Incident.ID)
		return nil
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
