package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"procview/internal/event"
	"procview/internal/progress"
	"procview/internal/telemetry"
	"procview/internal/ui"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "procview requires an interactive terminal")
		os.Exit(1)
	}

	if os.Getenv("PROCVIEW_DEBUG") != "" {
		f, err := tea.LogToFile("procview.log", "procview")
		if err == nil {
			defer f.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := telemetry.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}

	// Two producers, one ordered queue, one consumer. The ticker feeds the
	// queue; the forward goroutine drains it into the program's message
	// loop, where it merges with the terminal reader's key events.
	queue := event.NewQueue()
	ticker := progress.NewTicker()
	go ticker.Run(ctx, queue)

	p := tea.NewProgram(ui.New(session), tea.WithAltScreen())
	go ui.Forward(p, queue)

	model, runErr := p.Run()
	cancel()
	queue.Close()

	fatal := runErr
	if m, ok := model.(ui.Model); ok {
		if fatal == nil {
			fatal = m.Err()
		}
		if fatal == nil && m.Exited() {
			fmt.Println(m.ExitNotice())
		}
	}

	if err := session.End(context.Background(), fatal); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry flush: %v\n", err)
	}

	// Fatal conditions surface on stderr but share the normal exit path;
	// there is no distinct non-zero termination.
	if fatal != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fatal)
	}
}
