package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/app"
	"github.com/heartmarshall/prodcost-backend/internal/auth"
	"github.com/heartmarshall/prodcost-backend/internal/config"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/report"
	"github.com/heartmarshall/prodcost-backend/internal/service/costcalc"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "prodctl",
		Usage:   "production costing operations",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"CONFIG_PATH"},
				Usage:   "YAML config file (default " + config.DefaultPath + " when present)",
			},
		},
		Commands: []*cli.Command{
			migrateCommand(),
			recalcCommand(),
			elapsedCommand(),
			tokenCommand(),
			exportCommand(),
		},
	}
}

// env is what every database-backed command runs against.
type env struct {
	cfg  *config.Config
	svcs *app.Services
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadPath(path)
	}
	return config.Load()
}

func withServices(c *cli.Context, fn func(ctx context.Context, e env) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(c.Context, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(c.Context, env{cfg: cfg, svcs: app.NewServices(cfg, logger, pool)})
}

func parseDay(raw string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", raw)
	}
	return day, nil
}

func migrateCommand() *cli.Command {
	withMigrator := func(fn func(ctx context.Context, c *cli.Context, m *postgres.Migrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			m, err := postgres.NewMigrator(c.Context, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck
			return fn(c.Context, c, m)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(ctx context.Context, c *cli.Context, m *postgres.Migrator) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "applied %d migration(s): %v\n", len(applied), applied)
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withMigrator(func(ctx context.Context, c *cli.Context, m *postgres.Migrator) error {
					if err := m.Down(ctx); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "rolled back one migration")
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: withMigrator(func(ctx context.Context, c *cli.Context, m *postgres.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
					for _, s := range statuses {
						fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
					}
					return tw.Flush()
				}),
			},
		},
	}
}

func recalcCommand() *cli.Command {
	return &cli.Command{
		Name:  "recalc",
		Usage: "recalculate cost summaries of one batch or of every batch produced on a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "production date, YYYY-MM-DD"},
			&cli.StringFlag{Name: "batch", Usage: "batch ID"},
		},
		Action: func(c *cli.Context) error {
			date, batch := c.String("date"), c.String("batch")
			if (date == "") == (batch == "") {
				return cli.Exit("exactly one of --date or --batch is required", 2)
			}

			return withServices(c, func(ctx context.Context, e env) error {
				if batch != "" {
					id, err := uuid.Parse(batch)
					if err != nil {
						return fmt.Errorf("batch: %w", err)
					}
					calc, err := e.svcs.Costs.CalculateCosts(ctx, id)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "batch %s: changed=%t unit cost=%s time=%s anomalies=%d\n",
						id, calc.Changed, calc.Summary.OutputUnitCost,
						timeacct.FormatMinutes(calc.Summary.TimeUsedMinutes), len(calc.Anomalies))
					return nil
				}

				day, err := parseDay(date, e.cfg.Costing.Location)
				if err != nil {
					return err
				}
				rep, err := e.svcs.Costs.RecalculateDate(ctx, day)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "%s: %d batches, %d changed, %d unchanged, %d failed\n",
					day.Format(time.DateOnly), rep.Batches, rep.Changed, rep.Unchanged, len(rep.Failures))
				for _, f := range rep.Failures {
					fmt.Fprintf(c.App.Writer, "  %s: %v\n", f.BatchID, f.Err)
				}
				if len(rep.Failures) > 0 {
					return cli.Exit("some batches failed", 1)
				}
				return nil
			})
		},
	}
}

func elapsedCommand() *cli.Command {
	return &cli.Command{
		Name:  "elapsed",
		Usage: "print elapsed process time of a work plan",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "work-plan", Required: true, Usage: "work plan ID"},
			&cli.IntFlag{Name: "process", Value: -1, Usage: "only this process number"},
			&cli.StringFlag{Name: "date", Usage: "only events of this day, YYYY-MM-DD"},
		},
		Action: func(c *cli.Context) error {
			planID, err := uuid.Parse(c.String("work-plan"))
			if err != nil {
				return fmt.Errorf("work-plan: %w", err)
			}

			return withServices(c, func(ctx context.Context, e env) error {
				var f costcalc.ElapsedFilter
				if n := c.Int("process"); n >= 0 {
					f.ProcessNumber = &n
				}
				if raw := c.String("date"); raw != "" {
					day, err := parseDay(raw, e.cfg.Costing.Location)
					if err != nil {
						return err
					}
					f.OnDate = &day
				}

				res, err := e.svcs.Costs.Elapsed(ctx, planID, f)
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PROCESS\tMINUTES\tTIME")
				for _, p := range res.Processes {
					label := "-"
					if p.ProcessNumber != nil {
						label = fmt.Sprint(*p.ProcessNumber)
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\n", label, p.Minutes, timeacct.FormatMinutes(p.Minutes))
				}
				fmt.Fprintf(tw, "total\t%d\t%s\n", res.TotalMinutes, timeacct.FormatMinutes(res.TotalMinutes))
				if err := tw.Flush(); err != nil {
					return err
				}
				for _, a := range res.Anomalies {
					fmt.Fprintf(c.App.Writer, "anomaly: %s at %s\n", a.Kind, a.At.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue an access token for an operator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Usage: "operator ID (random when omitted)"},
			&cli.StringFlag{Name: "role", Value: string(domain.OperatorRoleOperator), Usage: "operator or supervisor"},
			&cli.DurationFlag{Name: "ttl", Usage: "token lifetime (config default when omitted)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			subject := uuid.New()
			if raw := c.String("subject"); raw != "" {
				if subject, err = uuid.Parse(raw); err != nil {
					return fmt.Errorf("subject: %w", err)
				}
			}
			ttl := cfg.Auth.AccessTokenTTL
			if c.IsSet("ttl") {
				ttl = c.Duration("ttl")
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).
				GenerateAccessToken(subject, domain.OperatorRole(c.String("role")))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the cost summaries of a date to an XLSX file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Required: true, Usage: "production date, YYYY-MM-DD"},
			&cli.StringFlag{Name: "out", Usage: "output file (default cost-summaries-<date>.xlsx)"},
		},
		Action: func(c *cli.Context) error {
			return withServices(c, func(ctx context.Context, e env) error {
				day, err := parseDay(c.String("date"), e.cfg.Costing.Location)
				if err != nil {
					return err
				}
				summaries, err := e.svcs.Costs.ListCostSummaries(ctx, day)
				if err != nil {
					return err
				}

				path := c.String("out")
				if path == "" {
					path = report.FileName(day)
				}
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := report.WriteCostSummaries(f, summaries); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "wrote %d summaries to %s\n", len(summaries), path)
				return nil
			})
		},
	}
}
