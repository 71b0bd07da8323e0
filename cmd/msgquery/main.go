// Command msgquery runs the message directory queries from the shell:
// search and filter, show one message, or print the status counts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"msgdesk/internal/config"
	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
	"msgdesk/internal/logging"
	"msgdesk/internal/source"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	dataFile   string
	configPath string
	logPath    string
	term       string
	status     string
	id         int
	stats      bool
	format     string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("msgquery", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.dataFile, "data", "", "Message file (.toml or mbox); defaults to the configured data file")
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the config file")
	fs.StringVar(&opts.logPath, "log", "", "Write a JSON log to this file")
	fs.StringVar(&opts.term, "q", "", "Case-insensitive search over name, email and message")
	fs.StringVar(&opts.status, "status", "all", "Status filter: all, new, read or replied")
	fs.IntVar(&opts.id, "id", -1, "Show the message with this id")
	fs.BoolVar(&opts.stats, "stats", false, "Print status counts")
	fs.StringVar(&opts.format, "format", "text", "Output format: text or toml")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	filter, err := directory.ParseStatusFilter(opts.status)
	if err != nil {
		fmt.Fprintf(stderr, "msgquery: %v\n", err)
		return exitUsage
	}
	if opts.format != "text" && opts.format != "toml" {
		fmt.Fprintf(stderr, "msgquery: unknown format %q\n", opts.format)
		return exitUsage
	}

	logger := zap.NewNop()
	if opts.logPath != "" {
		if logger, err = logging.New(opts.logPath); err != nil {
			fmt.Fprintf(stderr, "msgquery: %v\n", err)
			return exitError
		}
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewConfigService(opts.configPath, nil, logger).Load()
	if err != nil {
		fmt.Fprintf(stderr, "msgquery: %v\n", err)
		return exitError
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}

	messages, err := source.Load(cfg.DataFile)
	if err != nil {
		logger.Error("failed to load messages", zap.Error(err))
		fmt.Fprintf(stderr, "msgquery: %v\n", err)
		return exitError
	}
	store, err := directory.NewStore(messages)
	if err != nil {
		fmt.Fprintf(stderr, "msgquery: %v\n", err)
		return exitError
	}
	logger.Info("messages loaded", zap.String("source", source.Describe(cfg.DataFile)), zap.Int("count", store.Len()))

	switch {
	case opts.stats:
		printStats(stdout, store.Counts())

	case opts.id >= 0:
		sel := directory.NewSelection(store)
		if err := sel.Select(opts.id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintf(stderr, "msgquery: no message with id %d\n", opts.id)
			} else {
				fmt.Fprintf(stderr, "msgquery: %v\n", err)
			}
			return exitError
		}
		msg, _ := sel.Current()
		if opts.format == "toml" {
			return writeTOML(stdout, stderr, []domain.Message{msg})
		}
		printMessage(stdout, msg)

	default:
		results := directory.NewQueryEngine(store).Query(opts.term, filter)
		logger.Info("query", zap.String("term", opts.term), zap.Stringer("filter", filter), zap.Int("results", len(results)))
		if opts.format == "toml" {
			return writeTOML(stdout, stderr, results)
		}
		printTable(stdout, results)
	}
	return exitOK
}

func writeTOML(stdout, stderr io.Writer, messages []domain.Message) int {
	if err := source.EncodeTOML(stdout, messages); err != nil {
		fmt.Fprintf(stderr, "msgquery: %v\n", err)
		return exitError
	}
	return exitOK
}

func printTable(w io.Writer, messages []domain.Message) {
	if len(messages) == 0 {
		fmt.Fprintln(w, "no messages")
		return
	}
	rows := make([][]string, 0, len(messages))
	for _, msg := range messages {
		rows = append(rows, []string{
			strconv.Itoa(msg.ID),
			msg.Name,
			msg.Email,
			formatDate(msg),
			msg.Status.String(),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "EMAIL", "SUBMITTED", "STATUS").
		Rows(rows...)
	fmt.Fprintln(w, t.String())
}

func printMessage(w io.Writer, msg domain.Message) {
	fmt.Fprintf(w, "ID:        %d\n", msg.ID)
	fmt.Fprintf(w, "Name:      %s\n", msg.Name)
	fmt.Fprintf(w, "Email:     %s\n", msg.Email)
	fmt.Fprintf(w, "Submitted: %s\n", formatDate(msg))
	fmt.Fprintf(w, "Status:    %s\n\n", msg.Status)
	fmt.Fprintln(w, msg.Body)
}

func printStats(w io.Writer, counts directory.StatusCounts) {
	fmt.Fprintf(w, "total    %d\n", counts.Total)
	for _, status := range domain.Statuses {
		fmt.Fprintf(w, "%-8s %d\n", status, counts.ByStatus[status])
	}
}

func formatDate(msg domain.Message) string {
	if msg.SubmittedAt.IsZero() {
		return "-"
	}
	return msg.SubmittedAt.Format(source.TimeLayout)
}
