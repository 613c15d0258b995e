// export renders the minutes of a seeded meeting to a PDF file without
// starting the API server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/johnquangdev/notulensi/internal/adapter/repository"
	"github.com/johnquangdev/notulensi/internal/infrastructure/pdf"
	"github.com/johnquangdev/notulensi/internal/seed"
	"github.com/johnquangdev/notulensi/internal/usecase/export"
	"github.com/johnquangdev/notulensi/internal/usecase/permission"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var meetingID, outDir, locale string
	var list, verbose bool

	flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
	flagSet.StringVarP(&meetingID, "meeting", "m", "", "ID of the meeting to export")
	flagSet.StringVarP(&outDir, "out", "o", ".", "directory the PDF is written to")
	flagSet.StringVarP(&locale, "locale", "l", "id", "document locale (id or en)")
	flagSet.BoolVar(&list, "list", false, "list seeded meetings and exit")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log export details")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	data, err := seed.Load(seed.Options{})
	if err != nil {
		return err
	}
	meetings := repository.NewMeetingRepository(data.Meetings)
	ctx := context.Background()

	if list {
		for _, m := range meetings.List(ctx) {
			fmt.Fprintf(stdout, "%-4s %s  %s\n", m.ID, m.Date, m.Title)
		}
		return nil
	}
	if meetingID == "" {
		return fmt.Errorf("--meeting is required (see --list)")
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	svc, err := export.NewService(meetings, permission.NewGate(), pdf.NewMeasurer(), pdf.NewRenderer(), export.Options{
		Locale: locale,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	m, ok := meetings.FindByID(ctx, meetingID)
	if !ok {
		return fmt.Errorf("meeting %q not found", meetingID)
	}
	res, err := svc.Render(ctx, m, locale)
	if err != nil {
		return err
	}

	path := outputPath(outDir, res.FileName)
	if err := os.WriteFile(path, res.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "wrote %s (%d pages)\n", path, res.Pages)
	return nil
}

// outputPath keeps the file inside dir even when the title contains a slash
func outputPath(dir, fileName string) string {
	return filepath.Join(dir, strings.ReplaceAll(fileName, "/", "-"))
}
