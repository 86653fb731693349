/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/longkey1/twin/internal/observability"
	"github.com/longkey1/twin/internal/render"
	"github.com/longkey1/twin/internal/twin/client"
	"github.com/longkey1/twin/internal/twin/conversation"
	"github.com/longkey1/twin/internal/twin/panel"
	"github.com/longkey1/twin/internal/twin/timeline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	hidePanel bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with the digital twin",
	Long: `Send messages to the digital twin and print its replies.

If a message is provided as an argument, or piped on stdin, a single turn is sent
and the reply is printed together with the visual panel it selects.
Otherwise an interactive session starts. The backend assigns a session id on the
first reply and every later turn in the session reuses it.

Interactive commands:
  /help          Show available commands
  /info          Show session information
  /panel         Show the current visual panel
  /history       Print the conversation so far
  /svg <file>    Save the current skill radar as SVG
  /clear         Clear the screen
  /exit          Exit (Ctrl+D also works)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := timeline.NewStore(cfg.TimelineFile)
		if err != nil {
			return fmt.Errorf("loading timeline: %w", err)
		}

		// Ctrl+C at the prompt is handled by readline; turns are never cancelled
		ctx := cmd.Context()
		watchCtx, stopWatch := context.WithCancel(context.WithoutCancel(ctx))
		defer stopWatch()

		go func() {
			if err := store.Watch(watchCtx); err != nil {
				observability.Logger().Warn("timeline watch stopped", "error", err)
			}
		}()

		c := client.New(cfg.APIURL)
		s := &chatSession{
			ctrl:       conversation.NewController(c),
			client:     c,
			avatarURL:  cfg.AvatarURL,
			dispatcher: panel.NewDispatcher(store, cfg.RadarOptions()),
			store:      store,
			term:       render.NewTerminal(os.Stdout, render.TerminalWidth(os.Stdout), cfg.Color),
			showPanel:  !hidePanel,
		}

		// Get message from arguments or stdin
		var message string
		if len(args) > 0 {
			message = strings.Join(args, " ")
		} else if !term.IsTerminal(int(os.Stdin.Fd())) {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = strings.TrimSpace(string(input))
			if message == "" {
				return fmt.Errorf("no message provided on stdin")
			}
		}

		if message != "" {
			return s.oneShot(ctx, message)
		}

		if err := s.interactive(ctx); err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
		return nil
	},
}

// chatSession ties the controller to the terminal.
type chatSession struct {
	ctrl       *conversation.Controller
	client     *client.Client
	avatarURL  string
	dispatcher *panel.Dispatcher
	store      *timeline.Store
	term       *render.Terminal
	showPanel  bool
}

func (s *chatSession) oneShot(ctx context.Context, message string) error {
	turn, err := s.ctrl.Submit(ctx, message)
	if err != nil {
		return err
	}

	fmt.Println(turn.Reply.Content)
	if turn.Failed() {
		return fmt.Errorf("chat request failed: %w", turn.Err)
	}
	if s.showPanel && turn.Action != nil {
		fmt.Println()
		s.term.View(s.dispatcher.Dispatch(turn.Action))
	}
	return nil
}

// interactive starts an interactive chat session
func (s *chatSession) interactive(ctx context.Context) error {
	s.term.Greeting(s.client.ProbeAvatar(ctx, s.avatarURL))
	fmt.Fprintf(os.Stderr, "Type '/help' for commands, '/exit' or 'Ctrl+D' to quit\n\n")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("initializing line editor: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				fmt.Fprintln(os.Stderr, "Goodbye!")
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stderr, "\nGoodbye!")
			return nil
		}
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if s.handleSpecialCommand(input) {
				continue
			}
			return nil
		}

		done := make(chan bool)
		go showSpinner(done)

		turn, err := s.ctrl.Submit(ctx, input)

		done <- true
		close(done)

		if err != nil {
			// Blank or busy submissions are dropped silently
			continue
		}

		fmt.Println()
		s.term.Message(turn.Reply)
		fmt.Println()

		if s.showPanel && turn.Action != nil {
			s.term.View(s.dispatcher.Dispatch(turn.Action))
			fmt.Println()
		}
	}
}

// showSpinner displays a spinner animation while waiting for response
func showSpinner(done chan bool) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		<-done
		return
	}

	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	i := 0
	for {
		select {
		case <-done:
			fmt.Fprint(os.Stderr, "\r\033[K")
			return
		default:
			fmt.Fprintf(os.Stderr, "\r%s Thinking...", spinners[i])
			i = (i + 1) % len(spinners)
			time.Sleep(80 * time.Millisecond)
		}
	}
}

// handleSpecialCommand processes special commands in interactive mode
// Returns true to continue the loop, false to exit
func (s *chatSession) handleSpecialCommand(input string) bool {
	fields := strings.Fields(input)
	command := strings.ToLower(fields[0])

	switch command {
	case "/help", "/h":
		fmt.Fprintln(os.Stderr, "\nAvailable commands:")
		fmt.Fprintln(os.Stderr, "  /help, /h      - Show this help message")
		fmt.Fprintln(os.Stderr, "  /info, /i      - Show session information")
		fmt.Fprintln(os.Stderr, "  /panel, /p     - Show the current visual panel")
		fmt.Fprintln(os.Stderr, "  /history       - Print the conversation so far")
		fmt.Fprintln(os.Stderr, "  /svg <file>    - Save the current skill radar as SVG")
		fmt.Fprintln(os.Stderr, "  /clear, /c     - Clear screen")
		fmt.Fprintln(os.Stderr, "  /exit, /quit   - Exit interactive mode")
		fmt.Fprintln(os.Stderr, "  Ctrl+D         - Exit interactive mode")
		fmt.Fprintln(os.Stderr, "")
		return true

	case "/info", "/i":
		sessionID := s.ctrl.SessionID()
		if sessionID == "" {
			sessionID = "(not assigned yet)"
		}
		actionType := "none"
		if action := s.ctrl.Action(); action != nil {
			actionType = action.Type()
		}
		fmt.Fprintln(os.Stderr, "\nSession Information:")
		fmt.Fprintf(os.Stderr, "  Session: %s\n", sessionID)
		fmt.Fprintf(os.Stderr, "  Backend: %s\n", s.client.BaseURL())
		fmt.Fprintf(os.Stderr, "  Messages: %d\n", s.ctrl.MessageCount())
		fmt.Fprintf(os.Stderr, "  UI action: %s\n", actionType)
		fmt.Fprintf(os.Stderr, "  Timeline: %s\n", s.store.Version())
		fmt.Fprintln(os.Stderr, "")
		return true

	case "/panel", "/p":
		fmt.Println()
		s.term.View(s.dispatcher.Dispatch(s.ctrl.Action()))
		fmt.Println()
		return true

	case "/history":
		fmt.Println()
		for _, msg := range s.ctrl.Messages() {
			s.term.Message(msg)
		}
		fmt.Println()
		return true

	case "/svg":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: /svg <file>")
			return true
		}
		view, ok := s.dispatcher.Dispatch(s.ctrl.Action()).(*panel.RadarView)
		if !ok {
			fmt.Fprintln(os.Stderr, "The current panel is not a skill radar.")
			return true
		}
		if err := writeSVGFile(fields[1], view); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(os.Stderr, "Saved radar to %s\n", fields[1])
		return true

	case "/clear", "/c":
		fmt.Print(render.MoveCursorHome + render.ClearScreen)
		return true

	case "/exit", "/quit", "/q":
		fmt.Fprintln(os.Stderr, "Goodbye!")
		return false

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s (type '/help' for available commands)\n", command)
		return true
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVar(&hidePanel, "no-panel", false, "Do not render the visual panel after replies")
}
