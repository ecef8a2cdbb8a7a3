package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"studytracker/internal/modules/timer/domain"
	timerout "studytracker/internal/modules/timer/port/out"
)

// DesktopNotifier posts completion alerts through the desktop's notification
// command. Permission starts undecided and is settled on the first request by
// whether the command can be found.
type DesktopNotifier struct {
	command  string
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error

	mu         sync.Mutex
	permission domain.Permission
}

// NewDesktopNotifier uses command on Linux (notify-send when empty) and
// osascript on macOS.
func NewDesktopNotifier(command string) timerout.Notifier {
	if command == "" {
		command = "notify-send"
	}
	return &DesktopNotifier{
		command:    command,
		goos:       runtime.GOOS,
		lookPath:   exec.LookPath,
		run:        startCommand,
		permission: domain.PermissionDefault,
	}
}

func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

func (n *DesktopNotifier) Permission() domain.Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}

func (n *DesktopNotifier) RequestPermission(context.Context) domain.Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.permission != domain.PermissionDefault {
		return n.permission
	}
	n.permission = domain.PermissionDenied
	if bin := n.binary(); bin != "" {
		if _, err := n.lookPath(bin); err == nil {
			n.permission = domain.PermissionGranted
		}
	}
	return n.permission
}

func (n *DesktopNotifier) Notify(_ context.Context, title, body string) error {
	if n.Permission() != domain.PermissionGranted {
		return nil
	}
	var err error
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(body), strconv.Quote(title))
		err = n.run("osascript", "-e", script)
	case "linux":
		err = n.run(n.command, title, body)
	default:
		return fmt.Errorf("desktop notifications are not supported on %s", n.goos)
	}
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

func (n *DesktopNotifier) binary() string {
	switch n.goos {
	case "darwin":
		return "osascript"
	case "linux":
		return n.command
	default:
		return ""
	}
}
