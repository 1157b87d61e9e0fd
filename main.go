package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	appservice "burger/pkg/application/service"
	"burger/pkg/domain/model"
	"burger/pkg/domain/service"
	"burger/pkg/infrastructure/config"
	"burger/pkg/infrastructure/logging"
	"burger/pkg/infrastructure/storage"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	orderAction := func(c *cli.Context) error {
		return runOrder(c, in, out)
	}
	return &cli.App{
		Name:      "burger",
		Usage:     "build a burger order and keep a private record of it",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Usage: "directory for the order record and count"},
			&cli.IntFlag{Name: "max-attempts", Usage: "invalid answers allowed per question"},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)"},
		},
		Action: orderAction,
		Commands: []*cli.Command{
			{
				Name:   "order",
				Usage:  "order a burger interactively",
				Action: orderAction,
			},
			{
				Name:  "status",
				Usage: "show the order count and the last order",
				Action: func(c *cli.Context) error {
					return showStatus(c, out)
				},
			},
		},
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("max-attempts") {
		cfg.MaxAttempts = c.Int("max-attempts")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, cfg.Validate()
}

func runOrder(c *cli.Context, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	closer := logging.Setup(cfg.LogLevel, cfg.LogPath())
	defer closer.Close()

	repo, err := storage.NewFileOrderRepository(cfg.DataDir, log.StandardLogger())
	if err != nil {
		return err
	}

	menu := model.DefaultMenu()
	orders := service.NewOrderService(
		menu,
		repo,
		service.NewChoiceCollector(in, out, cfg.MaxAttempts),
		service.NewPriceCalculator(menu),
		time.Now,
	)

	result := appservice.NewOrderProcess(repo, orders, out, log.StandardLogger()).Run()
	log.WithFields(log.Fields{"state": result.State.String(), "saved": result.Saved}).Info("Run finished")
	return nil
}

func showStatus(c *cli.Context, out io.Writer) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	closer := logging.Setup(cfg.LogLevel, cfg.LogPath())
	defer closer.Close()

	repo, err := storage.NewFileOrderRepository(cfg.DataDir, log.StandardLogger())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Burgers made: %d\n", repo.LoadCount())
	record, err := repo.LastRecord()
	if err != nil {
		fmt.Fprintf(out, "Failed to read last burger: %v\n", err)
		return nil
	}
	if record == "" {
		fmt.Fprintln(out, "No burger recorded yet.")
		return nil
	}
	fmt.Fprint(out, record)
	return nil
}
