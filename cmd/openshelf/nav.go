package main

import (
	"fmt"
	"os"

	"github.com/openshelf/openshelf/internal/notify"
	"github.com/openshelf/openshelf/internal/ports"
)

// terminalNavigator renders navigation as terminal output. A soft navigation
// is informational; a hard one means the session was reset underneath us and
// the next invocation starts clean, which is exactly what a fresh process
// does anyway.
type terminalNavigator struct{}

var _ ports.Navigator = (*terminalNavigator)(nil)

func (t *terminalNavigator) Navigate(path string) {
	fmt.Fprintf(os.Stderr, "  \033[36m→\033[0m %s\n", path)
}

func (t *terminalNavigator) Assign(path string) {
	fmt.Fprintf(os.Stderr, "  \033[36m⇒\033[0m %s (session reset)\n", path)
}

// terminalSink prints notifications the way the web client showed toasts.
type terminalSink struct{}

var _ notify.Sink = (*terminalSink)(nil)

func (t *terminalSink) Deliver(n notify.Notification) {
	switch n.Kind {
	case notify.KindSuccess:
		fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", n.Message)
	case notify.KindWarning:
		fmt.Fprintf(os.Stderr, "\033[33m⚠\033[0m %s\n", n.Message)
	default:
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", n.Message)
	}
}
