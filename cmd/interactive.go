package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/google/uuid"

	"github.com/quocvuong92/learn-cli/internal/aliases"
	"github.com/quocvuong92/learn-cli/internal/api"
	"github.com/quocvuong92/learn-cli/internal/constants"
	"github.com/quocvuong92/learn-cli/internal/correct"
	"github.com/quocvuong92/learn-cli/internal/display"
	"github.com/quocvuong92/learn-cli/internal/executor"
	"github.com/quocvuong92/learn-cli/internal/explain"
	"github.com/quocvuong92/learn-cli/internal/history"
	"github.com/quocvuong92/learn-cli/internal/inventory"
	"github.com/quocvuong92/learn-cli/internal/logging"
)

const (
	explainPrefix = "learn "
	shellPrefix   = "!"
	exitCommand   = "exit"

	maxHints       = 3
	maxSuggestions = 50
)

// KeyAction is a session action bound to a key.
type KeyAction int

const (
	ActionAskAI KeyAction = iota
	ActionHelp
	ActionInventory
)

func (a KeyAction) String() string {
	switch a {
	case ActionAskAI:
		return "ask-ai"
	case ActionHelp:
		return "help"
	case ActionInventory:
		return "inventory"
	default:
		return "unknown"
	}
}

// keyActions binds keys to actions. Ctrl+C and Ctrl+D are handled separately
// because they end the session.
var keyActions = []struct {
	key    prompt.Key
	action KeyAction
}{
	{prompt.ControlG, ActionAskAI},
	{prompt.ControlT, ActionHelp},
	{prompt.ControlX, ActionInventory},
}

// InteractiveSession holds the state for an interactive learning session.
type InteractiveSession struct {
	printer   *display.Printer
	inventory *inventory.Inventory
	aliases   map[string]string
	suggester api.Suggester
	exec      executor.CommandExecutor
	history   history.HistoryManager
	logger    *logging.FieldLogger
	sessionID string
	actions   map[KeyAction]func()

	exitFlag         bool
	awaitingQuestion bool
}

func newInteractiveSession(
	printer *display.Printer,
	inv *inventory.Inventory,
	aliasMap map[string]string,
	suggester api.Suggester,
	exec executor.CommandExecutor,
	hist history.HistoryManager,
	logger *logging.Logger,
) *InteractiveSession {
	if aliasMap == nil {
		aliasMap = map[string]string{}
	}
	id := uuid.New().String()
	s := &InteractiveSession{
		printer:   printer,
		inventory: inv,
		aliases:   aliasMap,
		suggester: suggester,
		exec:      exec,
		history:   hist,
		logger:    logger.WithFields(logging.Fields{"session": id}),
		sessionID: id,
	}
	s.actions = map[KeyAction]func(){
		ActionAskAI:     s.armQuestion,
		ActionHelp:      s.showHelp,
		ActionInventory: s.showInventory,
	}
	return s
}

// runInteractive starts the REPL. It returns when the user types "exit",
// presses Ctrl+C, or presses Ctrl+D on an empty line.
func (app *App) runInteractive() error {
	store := aliases.NewStore(app.cfg.AliasesFile)
	aliasMap, err := store.Load()
	if err != nil {
		app.printer.Failure("Could not load aliases: %v", err)
		aliasMap = nil
	}

	exec := executor.NewExecutor(app.logger)
	exec.SetTimeout(app.cfg.CommandTimeout)
	exec.AllowDangerous(app.cfg.AllowDangerous)

	hist := history.New(app.cfg.HistoryFile)
	if err := hist.Load(); err != nil {
		app.printer.Info("Note: could not load history: %v", err)
	}

	session := newInteractiveSession(
		app.printer,
		app.commandInventory(),
		aliasMap,
		api.NewClient(app.cfg, app.logger),
		exec,
		hist,
		app.logger,
	)

	app.printer.Banner("learn - Interactive Mode")
	app.printer.Plain("Type a command name to check it, 'learn <command>' to explain it, '!<command>' to run it.")
	app.printer.Plain("Ctrl+G ask AI | Ctrl+T help | Ctrl+X installed apps | Ctrl+C quit")
	if !app.cfg.HasAPIKey() {
		app.printer.Info("AI suggestions need LEARN_AI_API_KEY (or OPENAI_API_KEY).")
	}
	app.printer.Plain("")

	options := []prompt.Option{
		prompt.WithCompleter(session.completer),
		prompt.WithPrefix("> "),
		prompt.WithTitle(constants.AppName),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkBlue),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithMaxSuggestion(10),
		prompt.WithHistory(hist.Lines()),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
	}
	options = append(options, session.keyBindings()...)

	session.logger.Info("interactive session started", logging.Fields{"commands": session.inventory.Len()})
	p := prompt.New(session.executor, options...)
	p.Run()
	session.close()
	return nil
}

// keyBindings registers the dispatch table with the prompt.
func (s *InteractiveSession) keyBindings() []prompt.Option {
	options := make([]prompt.Option, 0, len(keyActions)+2)
	for _, binding := range keyActions {
		action := binding.action
		options = append(options, prompt.WithKeyBind(prompt.KeyBind{
			Key: binding.key,
			Fn: func(p *prompt.Prompt) bool {
				// The cursor sits on the prompt line.
				s.printer.Plain("")
				s.dispatch(action)
				return true
			},
		}))
	}

	options = append(options,
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				s.printer.Plain("\nGoodbye!")
				s.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					s.printer.Plain("Goodbye!")
					s.exitFlag = true
				}
				return false
			},
		}),
	)
	return options
}

// dispatch runs the action bound to a key.
func (s *InteractiveSession) dispatch(action KeyAction) {
	fn, ok := s.actions[action]
	if !ok {
		return
	}
	s.logger.Debug("key action", logging.Fields{"action": action.String()})
	fn()
}

// executor handles each submitted line.
func (s *InteractiveSession) executor(input string) {
	if s.exitFlag {
		return
	}
	if s.history != nil {
		s.history.Add(input)
	}
	if s.handle(input) {
		s.exitFlag = true
	}
}

// handle processes one line and reports whether the session should end.
// Lines are matched as typed: " git" is not the command "git". Blank lines
// are ignored.
func (s *InteractiveSession) handle(input string) bool {
	if s.awaitingQuestion {
		s.awaitingQuestion = false
		question := strings.TrimSpace(input)
		if question == "" {
			s.printer.Info("No question entered.")
			return false
		}
		s.askAI(question)
		return false
	}

	switch {
	case strings.TrimSpace(input) == "":
	case input == exitCommand:
		s.printer.Plain("Goodbye!")
		return true
	case strings.HasPrefix(input, explainPrefix):
		s.explain(strings.TrimPrefix(input, explainPrefix))
	case s.inventory.Contains(input):
		s.printer.ShortInstallStatus(input, inventory.IsInstalled(input))
	case strings.HasPrefix(input, shellPrefix):
		s.runShell(strings.TrimPrefix(input, shellPrefix))
	default:
		s.unknown(input)
	}
	return false
}

// explain looks up the word right after "learn "; "learn  ls" names the
// empty word and has no explanation.
func (s *InteractiveSession) explain(rest string) {
	word, _, _ := strings.Cut(rest, " ")
	s.printer.Explain(explain.Explain(word))
}

func (s *InteractiveSession) runShell(command string) {
	command = aliases.Expand(strings.TrimSpace(command), s.aliases)

	result, err := s.exec.Execute(context.Background(), command)
	if err != nil {
		s.printer.Failure("%v", err)
		return
	}
	if result.IsSuccess() {
		s.printer.Output(result.Output, true)
		return
	}
	s.logger.Debug("command failed", logging.Fields{"command": command, "exit_code": result.ExitCode})
	s.printer.Output(result.FormatResult(), false)
}

func (s *InteractiveSession) unknown(input string) {
	s.printer.Failure("Unknown command. Press Ctrl+T for help.")

	word := strings.Fields(input)[0]
	matches := correct.CloseMatches(word, s.inventory.Names(), maxHints, correct.DefaultCutoff)
	if len(matches) == 0 {
		return
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = "'" + m.Candidate + "'"
	}
	s.printer.Info("Did you mean %s?", strings.Join(names, ", "))
}

func (s *InteractiveSession) armQuestion() {
	s.awaitingQuestion = true
	s.printer.Info("AI Suggestion Mode: Ask your question and press Enter...")
}

func (s *InteractiveSession) askAI(question string) {
	spin := s.printer.Spinner("Thinking...")
	answer, err := s.suggester.Suggest(context.Background(), question)
	spin.Stop()

	if err != nil {
		s.logger.Error("AI suggestion failed", err)
		s.printer.Failure("AI suggestion failed: %v", err)
		return
	}
	s.printer.AI(answer)
}

func (s *InteractiveSession) showHelp() {
	s.printer.Help(helpText())
}

func (s *InteractiveSession) showInventory() {
	s.printer.Success("Installed Applications Info:")
	for _, name := range s.inventory.Names() {
		s.printer.ShortInstallStatus(name, inventory.IsInstalled(name))
	}
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Command Help\n\n")
	fmt.Fprintf(&b, "  %-20s %s\n", "<command>", "Check whether a command is installed")
	fmt.Fprintf(&b, "  %-20s %s\n", "learn <command>", "Explain a command ("+strings.Join(explain.Topics(), ", ")+")")
	fmt.Fprintf(&b, "  %-20s %s\n", "!<shell command>", "Run a shell command (aliases are expanded)")
	fmt.Fprintf(&b, "  %-20s %s\n", "exit", "Leave interactive mode")
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-20s %s\n", "Ctrl+G", "Ask the AI a question")
	fmt.Fprintf(&b, "  %-20s %s\n", "Ctrl+T", "Show this help")
	fmt.Fprintf(&b, "  %-20s %s\n", "Ctrl+X", "List installation status of every command")
	fmt.Fprintf(&b, "  %-20s %s", "Ctrl+C, Ctrl+D", "Quit")
	return b.String()
}

// completer suggests commands, explain topics after "learn ", and alias
// names after "!".
func (s *InteractiveSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	return s.suggestions(text, w), startIndex, endIndex
}

func (s *InteractiveSession) suggestions(text, word string) []prompt.Suggest {
	switch {
	case strings.HasPrefix(text, explainPrefix):
		var suggestions []prompt.Suggest
		for _, topic := range explain.Topics() {
			suggestions = append(suggestions, prompt.Suggest{Text: topic, Description: explain.Explain(topic)})
		}
		return prompt.FilterHasPrefix(suggestions, word, true)

	case strings.HasPrefix(text, shellPrefix):
		if strings.ContainsAny(text, " \t") {
			return []prompt.Suggest{}
		}
		var suggestions []prompt.Suggest
		for _, name := range aliases.Names(s.aliases) {
			suggestions = append(suggestions, prompt.Suggest{Text: shellPrefix + name, Description: s.aliases[name]})
		}
		return prompt.FilterHasPrefix(suggestions, word, true)

	case word == "" || strings.ContainsAny(text, " \t"):
		return []prompt.Suggest{}
	}

	names := s.inventory.Complete(word)
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	suggestions := make([]prompt.Suggest, 0, len(names)+1)
	if strings.HasPrefix(exitCommand, word) {
		suggestions = append(suggestions, prompt.Suggest{Text: exitCommand, Description: "Leave interactive mode"})
	}
	for _, name := range names {
		suggestions = append(suggestions, prompt.Suggest{Text: name})
	}
	return suggestions
}

// close persists input history.
func (s *InteractiveSession) close() {
	if s.history == nil {
		return
	}
	if err := s.history.Save(); err != nil {
		s.printer.Failure("Warning: could not save history: %v", err)
	}
	s.logger.Info("interactive session ended")
}
