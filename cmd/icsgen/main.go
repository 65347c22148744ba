package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"github.com/urfave/cli/v2"

	"github.com/calfmt/ics"
	"github.com/calfmt/ics/xcal"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "icsgen",
		Usage: "Generate RFC 5545 iCalendar documents.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "service", Value: "icsgen", Usage: "Service name used in the PRODID property.", EnvVars: []string{"ICSGEN_SERVICE"}},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Log level: debug, info, warn or error.", EnvVars: []string{"ICSGEN_LOG_LEVEL"}},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the document to a file instead of stdout."},
			&cli.BoolFlag{Name: "xcal", Usage: "Emit xCal XML (RFC 6321) instead of iCalendar text."},
			&cli.IntFlag{Name: "line-length", Value: 75, Usage: "Maximum physical line length in octets."},
			&cli.BoolFlag{Name: "lf", Usage: "Use LF line endings instead of CRLF."},
		},
		Commands: []*cli.Command{
			eventCommand(),
			todoCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func eventCommand() *cli.Command {
	return &cli.Command{
		Name:  "event",
		Usage: "Generate a calendar holding a single VEVENT.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "uid", Usage: "Event UID. A random UUID is used when empty."},
			&cli.StringFlag{Name: "summary", Required: true, Usage: "Event title."},
			&cli.StringFlag{Name: "description", Usage: "Event body text."},
			&cli.StringFlag{Name: "location", Usage: "Event location."},
			&cli.StringFlag{Name: "start", Usage: "Start time, RFC 3339, compact iCalendar stamp, or bare date."},
			&cli.StringFlag{Name: "end", Usage: "End time, same forms as --start."},
			&cli.DurationFlag{Name: "duration", Usage: "Event length, used when --end is not given."},
			&cli.StringFlag{Name: "organizer", Usage: "Organizer email address."},
			&cli.StringSliceFlag{Name: "attendee", Usage: "Attendee email address. May be repeated."},
			&cli.StringFlag{Name: "rrule", Usage: "Recurrence rule, e.g. FREQ=WEEKLY;BYDAY=MO."},
			&cli.StringFlag{Name: "alarm", Usage: "Display alarm trigger, e.g. -PT15M."},
		},
		Action: runEvent,
	}
}

func runEvent(c *cli.Context) error {
	logger := setupLogger(c.String("log-level"))

	cal := ics.NewCalendarFor(c.String("service"))
	uid := c.String("uid")
	if uid == "" {
		uid = uuid.NewString()
	}
	event := cal.AddEvent(uid)
	event.SetDtStampTime(time.Now())
	event.SetSummary(c.String("summary"))
	if v := c.String("description"); v != "" {
		event.SetDescription(ics.ToText(v))
	}
	if v := c.String("location"); v != "" {
		event.SetLocation(ics.ToText(v))
	}

	if v := c.String("start"); v != "" {
		start, dateOnly, err := parseFlagTime(v)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
		if dateOnly {
			event.SetAllDayStartAt(start)
		} else {
			event.SetStartAt(start)
		}
	}
	switch {
	case c.String("end") != "":
		end, dateOnly, err := parseFlagTime(c.String("end"))
		if err != nil {
			return fmt.Errorf("parsing --end: %w", err)
		}
		if dateOnly {
			event.SetAllDayEndAt(end)
		} else {
			event.SetEndAt(end)
		}
	case c.Duration("duration") > 0:
		if err := event.SetDuration(c.Duration("duration")); err != nil {
			return fmt.Errorf("applying --duration: %w", err)
		}
	}

	if v := c.String("organizer"); v != "" {
		event.SetOrganizer(v)
	}
	for _, a := range c.StringSlice("attendee") {
		event.AddAttendee(a, ics.ParticipationStatusNeedsAction, ics.WithRSVP(true))
	}
	if v := c.String("rrule"); v != "" {
		if _, err := rrule.StrToRRule(v); err != nil {
			return fmt.Errorf("invalid --rrule: %w", err)
		}
		event.AddRrule(v)
	}
	if v := c.String("alarm"); v != "" {
		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(v)
	}

	logger.Debug("Generated event.", "uid", uid)
	return writeCalendar(c, logger, cal)
}

func todoCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Generate a calendar holding a single VTODO.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "uid", Usage: "Task UID. A random UUID is used when empty."},
			&cli.StringFlag{Name: "summary", Required: true, Usage: "Task title."},
			&cli.StringFlag{Name: "description", Usage: "Task body text."},
			&cli.StringFlag{Name: "due", Usage: "Due time, RFC 3339, compact iCalendar stamp, or bare date."},
			&cli.IntFlag{Name: "priority", Usage: "Priority 1 (highest) through 9 (lowest)."},
			&cli.IntFlag{Name: "percent-complete", Usage: "Completion percentage, 0 through 100."},
		},
		Action: runTodo,
	}
}

func runTodo(c *cli.Context) error {
	logger := setupLogger(c.String("log-level"))

	cal := ics.NewCalendarFor(c.String("service"))
	uid := c.String("uid")
	if uid == "" {
		uid = uuid.NewString()
	}
	todo := cal.AddTodo(uid)
	todo.SetDtStampTime(time.Now())
	todo.SetSummary(c.String("summary"))
	todo.SetStatus(ics.ObjectStatusNeedsAction)
	if v := c.String("description"); v != "" {
		todo.SetDescription(ics.ToText(v))
	}
	if v := c.String("due"); v != "" {
		due, dateOnly, err := parseFlagTime(v)
		if err != nil {
			return fmt.Errorf("parsing --due: %w", err)
		}
		if dateOnly {
			todo.SetAllDayDueAt(due)
		} else {
			todo.SetDueAt(due)
		}
	}
	if v := c.Int("priority"); v > 0 {
		todo.SetPriority(v)
	}
	if c.IsSet("percent-complete") {
		todo.SetPercentComplete(c.Int("percent-complete"))
	}

	logger.Debug("Generated task.", "uid", uid)
	return writeCalendar(c, logger, cal)
}

func writeCalendar(c *cli.Context, logger *slog.Logger, cal *ics.Calendar) error {
	path := c.String("output")
	if c.Bool("xcal") {
		out, err := xcal.Marshal(cal)
		if err != nil {
			return fmt.Errorf("rendering xcal: %w", err)
		}
		if path == "" {
			fmt.Println(out)
			return nil
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("Wrote xCal document.", "path", path)
		return nil
	}

	ops := []any{ics.WithLineLength(c.Int("line-length"))}
	if c.Bool("lf") {
		ops = append(ops, ics.WithNewLineUnix)
	}
	if path == "" {
		return cal.SerializeTo(os.Stdout, ops...)
	}
	if err := cal.SaveTo(path, ops...); err != nil {
		return err
	}
	logger.Info("Wrote calendar.", "path", path)
	return nil
}

// parseFlagTime accepts RFC 3339, the compact iCalendar stamp, or a bare
// date. The bool reports a date-only value.
func parseFlagTime(s string) (time.Time, bool, error) {
	for _, layout := range []string{time.RFC3339, "20060102T150405Z", "20060102T150405"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, false, nil
		}
	}
	for _, layout := range []string{"2006-01-02", "20060102"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized time %q", s)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
