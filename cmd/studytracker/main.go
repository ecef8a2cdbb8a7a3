package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"studytracker/internal/bootstrap"
	librarydto "studytracker/internal/modules/library/dto"
	settingsdto "studytracker/internal/modules/settings/dto"
	timerdto "studytracker/internal/modules/timer/dto"
	"studytracker/internal/platform/config"
	"studytracker/internal/platform/logging"
)

var (
	good  = color.New(color.FgGreen).SprintFunc()
	warn  = color.New(color.FgYellow).SprintFunc()
	muted = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "studytracker",
		Short:         "Pomodoro study timer with subjects, progress and a reading list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./studytracker.yaml or ~/.config/studytracker/studytracker.yaml)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newTimerCmd(opts))
	root.AddCommand(newSessionCmd(opts))
	root.AddCommand(newSubjectCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newLibraryCmd(opts))
	root.AddCommand(newBackupCmd(opts))
	root.AddCommand(newSettingsCmd(opts))
	root.AddCommand(newResetCmd(opts))
	return root
}

// session bundles the wired app with the resources that must be released
// when the command returns.
type session struct {
	*bootstrap.App
	logCloser io.Closer
}

func (s *session) Close() {
	_ = s.App.Close()
	_ = s.logCloser.Close()
}

func loadApp(opts *rootOptions, tui bool, bopts bootstrap.Options) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	logFile := cfg.Log.File
	if tui && logFile == "" {
		logFile = filepath.Join(cfg.DataDir, "studytracker.log")
	}
	closer, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   logFile,
	})
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(context.Background(), *cfg, bopts)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	return &session{App: app, logCloser: closer}, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, true, bootstrap.TUIOptions(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app.App)
		},
	}
}

// ─── timer ───────────────────────────────────────────────────────────────────

func newTimerCmd(opts *rootOptions) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Pomodoro timer"}

	var subject string
	var study, brk, questions, correct int
	run := &cobra.Command{
		Use:   "run --subject <name>",
		Short: "Run one focus phase in the foreground and record it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("--subject is required")
			}
			app, err := loadApp(opts, false, bootstrap.Options{CueOutput: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runTimer(ctx, app.App, cmd.OutOrStdout(), subject, study, brk, questions, correct)
		},
	}
	run.Flags().StringVar(&subject, "subject", "", "subject name")
	run.Flags().IntVar(&study, "study", 0, "focus minutes (default from config)")
	run.Flags().IntVar(&brk, "break", 0, "break minutes (default from config)")
	run.Flags().IntVar(&questions, "questions", 0, "questions answered")
	run.Flags().IntVar(&correct, "correct", 0, "questions answered correctly")

	timer.AddCommand(run)
	return timer
}

func runTimer(ctx context.Context, app *bootstrap.App, out io.Writer, subject string, study, brk, questions, correct int) error {
	t := app.Timer
	if study > 0 {
		if _, err := t.SetStudyMinutes(ctx, study); err != nil {
			return err
		}
	}
	if brk > 0 {
		if _, err := t.SetBreakMinutes(ctx, brk); err != nil {
			return err
		}
	}
	if err := t.SelectSubject(ctx, subject); err != nil {
		return err
	}
	if questions > 0 || correct > 0 {
		if err := t.SetQuestions(ctx, questions, correct); err != nil {
			return err
		}
	}

	done := make(chan timerdto.Event, 1)
	t.Subscribe(func(ev timerdto.Event) {
		switch ev.Kind {
		case timerdto.EventTick:
			_, _ = fmt.Fprintf(out, "\r%s %s  %s ", bold(ev.Snapshot.Clock), muted(ev.Snapshot.Subject), muted(fmt.Sprintf("%3.0f%%", ev.Snapshot.Progress*100)))
		case timerdto.EventCompleted, timerdto.EventFault:
			if ev.Phase == timerdto.PhaseStudy || ev.Kind == timerdto.EventFault {
				select {
				case done <- ev:
				default:
				}
			}
		}
	})
	defer t.Subscribe(nil)

	if err := t.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(out)
		if err := t.Stop(context.Background()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, warn("stopped, nothing recorded"))
		return nil
	case ev := <-done:
		_, _ = fmt.Fprintln(out)
		if ev.Kind == timerdto.EventFault {
			return ev.Err
		}
		if !ev.Recorded {
			return errors.New("focus phase finished but the session was not recorded")
		}
		_, _ = fmt.Fprintf(out, "%s %d min of %s recorded\n", good("✓"), ev.PlannedMinutes, ev.Snapshot.Subject)
		return nil
	}
}

// ─── sessions ────────────────────────────────────────────────────────────────

func newSessionCmd(opts *rootOptions) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Recorded study sessions"}

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest last",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			sessions, err := app.SessionCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dmin\t%d/%d\n", s.Date.Local().Format("2006-01-02 15:04"), s.Subject, s.Duration, s.CorrectQuestions, s.Questions)
			}
			return nil
		},
	})

	var subject string
	var minutes, questions, correct int
	record := &cobra.Command{
		Use:   "record --subject <name> --minutes <n>",
		Short: "Record a completed focus session by hand",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Record(cmd.Context(), subject, minutes, questions, correct)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s: %s %dmin", out.ID, out.Subject, out.Duration)
			if out.JournalPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " journal=%s", out.JournalPath)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	record.Flags().StringVar(&subject, "subject", "", "subject name")
	record.Flags().IntVar(&minutes, "minutes", 0, "planned focus minutes")
	record.Flags().IntVar(&questions, "questions", 0, "questions answered")
	record.Flags().IntVar(&correct, "correct", 0, "questions answered correctly")

	session.AddCommand(record)
	return session
}

// ─── subjects ────────────────────────────────────────────────────────────────

func newSubjectCmd(opts *rootOptions) *cobra.Command {
	subject := &cobra.Command{Use: "subject", Short: "Subjects, chapters and tasks"}

	subject.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show every subject with its chapters and tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			subjects, err := app.CatalogCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(subjects) == 0 {
				_, _ = fmt.Fprintln(w, "no subjects")
				return nil
			}
			for _, s := range subjects {
				_, _ = fmt.Fprintf(w, "%s %s %s\n", bold(s.Name), muted(s.Color), muted(fmt.Sprintf("%d/%d tasks  id=%s", s.TasksDone, s.TasksTotal, s.ID)))
				for _, ch := range s.Chapters {
					_, _ = fmt.Fprintf(w, "  %s %s\n", ch.Name, muted("id="+ch.ID))
					for _, t := range ch.Tasks {
						box := "[ ]"
						if t.Completed {
							box = good("[x]")
						}
						_, _ = fmt.Fprintf(w, "    %s %s %s\n", box, t.Name, muted("id="+t.ID))
					}
				}
			}
			return nil
		},
	})

	subject.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.CatalogCLI.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) color=%s\n", s.Name, s.ID, s.Color)
			return nil
		},
	})

	subject.AddCommand(&cobra.Command{
		Use:   "delete <name|id>",
		Short: "Delete a subject with its chapters and tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.CatalogCLI.Resolve(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := app.CatalogCLI.Delete(cmd.Context(), s.ID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", s.Name)
			return nil
		},
	})

	subject.AddCommand(newChapterCmd(opts), newTaskCmd(opts))
	return subject
}

func newChapterCmd(opts *rootOptions) *cobra.Command {
	chapter := &cobra.Command{Use: "chapter", Short: "Chapters of a subject"}

	var name string
	add := &cobra.Command{
		Use:   "add <subject>",
		Short: "Append a chapter to a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := cmd.Context()
			s, err := app.CatalogCLI.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			ch, err := app.CatalogCLI.AddChapter(ctx, s.ID)
			if err != nil {
				return err
			}
			if name != "" {
				if err := app.CatalogCLI.RenameChapter(ctx, s.ID, ch.ID, name); err != nil {
					return err
				}
				ch.Name = name
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added chapter %q (%s) to %s\n", ch.Name, ch.ID, s.Name)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "chapter name")

	rename := &cobra.Command{
		Use:   "rename <subject> <chapter-id> <name>",
		Short: "Rename a chapter",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.CatalogCLI.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.CatalogCLI.RenameChapter(cmd.Context(), s.ID, args[1], strings.Join(args[2:], " "))
		},
	}

	del := &cobra.Command{
		Use:   "delete <subject> <chapter-id>",
		Short: "Delete a chapter and its tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.CatalogCLI.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.CatalogCLI.DeleteChapter(cmd.Context(), s.ID, args[1])
		},
	}

	chapter.AddCommand(add, rename, del)
	return chapter
}

func newTaskCmd(opts *rootOptions) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Tasks inside a chapter"}

	var name string
	add := &cobra.Command{
		Use:   "add <subject> <chapter-id>",
		Short: "Append a task to a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := cmd.Context()
			s, err := app.CatalogCLI.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			t, err := app.CatalogCLI.AddTask(ctx, s.ID, args[1])
			if err != nil {
				return err
			}
			if name != "" {
				if err := app.CatalogCLI.RenameTask(ctx, s.ID, args[1], t.ID, name); err != nil {
					return err
				}
				t.Name = name
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added task %q (%s)\n", t.Name, t.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "task name")

	taskAction := func(use, short string, fn func(ctx context.Context, app *session, subjectID string, args []string) error, nargs int) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MinimumNArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(opts, false, bootstrap.Options{})
				if err != nil {
					return err
				}
				defer app.Close()
				s, err := app.CatalogCLI.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return fn(cmd.Context(), app, s.ID, args[1:])
			},
		}
	}

	task.AddCommand(
		add,
		taskAction("toggle <subject> <chapter-id> <task-id>", "Flip a task between open and done",
			func(ctx context.Context, app *session, subjectID string, args []string) error {
				return app.CatalogCLI.ToggleTask(ctx, subjectID, args[0], args[1])
			}, 3),
		taskAction("rename <subject> <chapter-id> <task-id> <name>", "Rename a task",
			func(ctx context.Context, app *session, subjectID string, args []string) error {
				return app.CatalogCLI.RenameTask(ctx, subjectID, args[0], args[1], strings.Join(args[2:], " "))
			}, 4),
		taskAction("delete <subject> <chapter-id> <task-id>", "Delete a task",
			func(ctx context.Context, app *session, subjectID string, args []string) error {
				return app.CatalogCLI.DeleteTask(ctx, subjectID, args[0], args[1])
			}, 3),
	)
	return task
}

// ─── stats ───────────────────────────────────────────────────────────────────

func newStatsCmd(opts *rootOptions) *cobra.Command {
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Streak, rank, achievements and today's goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.ProgressCLI.Summary(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s %s\n", muted("rank:  "), bold(s.Rank))
			if !s.TopRank {
				_, _ = fmt.Fprintf(w, "%s %s in %d achievement(s)\n", muted("next:  "), s.NextRank, s.NextRankNeeded)
			}
			_, _ = fmt.Fprintf(w, "%s %d day(s)\n", muted("streak:"), s.Streak)
			_, _ = fmt.Fprintf(w, "%s %d min over %d session(s)\n", muted("total: "), s.TotalMinutes, s.Sessions)
			_, _ = fmt.Fprintf(w, "%s %s\n\n", muted("today: "), goalColor(s.Today.Status, fmt.Sprintf("%d / %d min", s.Today.Minutes, s.Today.Goal)))
			_, _ = fmt.Fprintf(w, "achievements %d/%d\n", s.Unlocked, s.Total)
			for _, a := range s.Achievements {
				if a.Unlocked {
					_, _ = fmt.Fprintf(w, "  %s %s\n", good("★ "+a.Title), muted(a.Description))
				} else {
					_, _ = fmt.Fprintf(w, "  %s\n", muted("☆ "+a.Title+"  "+a.Description))
				}
			}
			return nil
		},
	}

	stats.AddCommand(&cobra.Command{
		Use:   "subjects",
		Short: "Minutes and accuracy per subject",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			rows, err := app.ProgressCLI.Subjects(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, r := range rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %5dmin %4d sessions %5.1f%%\n", r.Subject, r.Minutes, r.Sessions, r.Accuracy)
			}
			return nil
		},
	})

	var monthFlag string
	month := &cobra.Command{
		Use:   "month",
		Short: "Calendar of a month coloured by daily goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, mon, err := parseMonth(monthFlag, time.Now())
			if err != nil {
				return err
			}
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			cal, err := app.ProgressCLI.Month(cmd.Context(), year, mon)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s %d  %s\n", cal.Month, cal.Year, muted(fmt.Sprintf("goal %dmin", cal.Goal)))
			_, _ = fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")
			_, _ = fmt.Fprint(w, strings.Repeat("    ", cal.Offset))
			col := cal.Offset
			for _, d := range cal.Days {
				_, _ = fmt.Fprint(w, goalColor(d.Status, fmt.Sprintf("%3d", d.Day))+" ")
				col++
				if col == 7 {
					_, _ = fmt.Fprintln(w)
					col = 0
				}
			}
			_, _ = fmt.Fprintln(w)
			return nil
		},
	}
	month.Flags().StringVar(&monthFlag, "month", "", "month as YYYY-MM (default current)")

	stats.AddCommand(month)

	stats.AddCommand(&cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Totals for a single day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			d, err := app.ProgressCLI.Day(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  %s  %d session(s)  %d/%d correct\n", d.Date, goalColor(d.Status, fmt.Sprintf("%dmin", d.Minutes)), d.Sessions, d.Correct, d.Questions)
			for subject, minutes := range d.Subjects {
				_, _ = fmt.Fprintf(w, "  %-20s %dmin\n", subject, minutes)
			}
			return nil
		},
	})
	return stats
}

func parseMonth(value string, now time.Time) (int, time.Month, error) {
	if value == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("--month must be YYYY-MM: %w", err)
	}
	return t.Year(), t.Month(), nil
}

func goalColor(status, text string) string {
	switch status {
	case "met":
		return good(text)
	case "warning":
		return warn(text)
	default:
		return text
	}
}

// ─── library ─────────────────────────────────────────────────────────────────

func newLibraryCmd(opts *rootOptions) *cobra.Command {
	library := &cobra.Command{Use: "library", Short: "Reading list backed by Open Library"}

	printBook := func(w io.Writer, b librarydto.BookOutput) {
		status := warn("reading")
		if b.Completed {
			status = good("completed")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Title, strings.Join(b.Authors, ", "), status)
	}

	library.AddCommand(&cobra.Command{
		Use:   "search <term>",
		Short: "Look up the first Open Library match without shelving it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			b, err := app.LibraryCLI.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\nby %s\ncover %s\n", bold(b.Title), strings.Join(b.Authors, ", "), b.Thumbnail)
			return nil
		},
	})

	library.AddCommand(&cobra.Command{
		Use:   "add <term>",
		Short: "Search Open Library and shelve the first match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			b, err := app.LibraryCLI.SearchAndAdd(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printBook(cmd.OutOrStdout(), b)
			return nil
		},
	})

	library.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shelved books, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			books, err := app.LibraryCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(books) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no books")
				return nil
			}
			for _, b := range books {
				printBook(cmd.OutOrStdout(), b)
			}
			return nil
		},
	})

	library.AddCommand(&cobra.Command{
		Use:   "toggle <book-id>",
		Short: "Mark a book completed or back to reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			b, err := app.LibraryCLI.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBook(cmd.OutOrStdout(), b)
			return nil
		},
	})

	library.AddCommand(&cobra.Command{
		Use:   "remove <book-id>",
		Short: "Remove a book from the shelf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			return app.LibraryCLI.Remove(cmd.Context(), args[0])
		},
	})
	return library
}

// ─── backup ──────────────────────────────────────────────────────────────────

func newBackupCmd(opts *rootOptions) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "Export and restore all data as JSON"}

	backup.AddCommand(&cobra.Command{
		Use:   "export [path]",
		Short: "Write a backup file (default study-tracker-backup-<date>.json)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.BackupCLI.Export(cmd.Context())
			if err != nil {
				return err
			}
			path := out.FileName
			if len(args) == 1 {
				path = args[0]
			}
			if path == "-" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(path, out.Data, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s\n", path)
			return nil
		},
	})

	backup.AddCommand(&cobra.Command{
		Use:   "import <path>",
		Short: "Replace all data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.BackupCLI.Import(cmd.Context(), data)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "restored %d subject(s), %d session(s), %d book(s)\n", out.Subjects, out.Sessions, out.Books)
			return nil
		},
	})
	return backup
}

// ─── settings ────────────────────────────────────────────────────────────────

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "User preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.SettingsCLI.Get(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), s)
			return nil
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting: goal, color, mode, background, volume, notifications",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := parseSetting(args[0], args[1])
			if err != nil {
				return err
			}
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.SettingsCLI.Update(cmd.Context(), input)
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), s)
			return nil
		},
	})
	return settings
}

func parseSetting(key, value string) (settingsdto.UpdateInput, error) {
	var in settingsdto.UpdateInput
	switch key {
	case "goal", "daily-goal":
		n, err := strconv.Atoi(value)
		if err != nil {
			return in, fmt.Errorf("goal must be whole minutes: %w", err)
		}
		in.DailyGoal = &n
	case "color", "primary-color":
		in.PrimaryColor = &value
	case "mode", "color-mode":
		in.ColorMode = &value
	case "background", "background-mode":
		in.BackgroundMode = &value
	case "volume":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return in, fmt.Errorf("volume must be a number between 0 and 1: %w", err)
		}
		in.Volume = &v
	case "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch value {
			case "on":
				b = true
			case "off":
				b = false
			default:
				return in, fmt.Errorf("notifications must be on or off")
			}
		}
		in.NotificationsEnabled = &b
	default:
		return in, fmt.Errorf("unknown setting %q", key)
	}
	return in, nil
}

func printSettings(w io.Writer, s settingsdto.SettingsOutput) {
	_, _ = fmt.Fprintf(w, "goal=%dmin color=%s mode=%s background=%s volume=%.2f notifications=%t\n",
		s.DailyGoal, s.PrimaryColor, s.ColorMode, s.BackgroundMode, s.Volume, s.NotificationsEnabled)
}

// ─── reset ───────────────────────────────────────────────────────────────────

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Erase all subjects, sessions, books and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to erase data without --yes")
			}
			app, err := loadApp(opts, false, bootstrap.Options{})
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.BackupCLI.Reset(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
