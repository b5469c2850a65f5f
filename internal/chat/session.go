package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/kipp/internal/command"
	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/usecase"
)

// Argument delimiters.
const (
	byDelimiter   = " /by "
	fromDelimiter = " /from "
	toDelimiter   = " /to "
)

// Reply texts shared by several commands.
const (
	emptyListText        = "You have 0 tasks on your list."
	invalidNumberText    = "Please provide a valid task number."
	emptyDescriptionText = "Please provide a task description."
	invalidPathText      = "Please provide a valid file path, e.g. tasks.json."
)

// Config holds the per-session settings taken from the app config.
type Config struct {
	StorePath string              // File used by save and load without an argument
	OnRepeat  domain.RepeatPolicy // Behaviour of mark/unmark on a task already in that state
}

// Session is one conversation with the assistant.
// It owns the active task list; load replaces it wholesale.
// A Session is not safe for concurrent use.
type Session struct {
	tasks    *domain.TaskList
	registry *command.Registry
	logger   domain.Logger

	addTask       *usecase.AddTask
	setCompletion *usecase.SetCompletion
	deleteTask    *usecase.DeleteTask
	listTasks     *usecase.ListTasks
	findTasks     *usecase.FindTasks
	saveTasks     *usecase.SaveTasks
	loadTasks     *usecase.LoadTasks

	storePath string
}

// NewSession creates a session with an empty task list.
func NewSession(store domain.TaskListStore, cfg Config, logger domain.Logger) *Session {
	policy := cfg.OnRepeat
	if policy == "" {
		policy = domain.RepeatReject
	}

	s := &Session{
		tasks:     domain.NewTaskList(),
		logger:    logger,
		storePath: cfg.StorePath,
	}
	s.addTask = usecase.NewAddTask(s, logger)
	s.setCompletion = usecase.NewSetCompletion(s, policy, logger)
	s.deleteTask = usecase.NewDeleteTask(s, logger)
	s.listTasks = usecase.NewListTasks(s)
	s.findTasks = usecase.NewFindTasks(s)
	s.saveTasks = usecase.NewSaveTasks(s, store, cfg.StorePath, logger)
	s.loadTasks = usecase.NewLoadTasks(s, store, cfg.StorePath, logger)

	s.registry = command.NewRegistry(command.WithHelp())
	s.registerCommands()
	return s
}

// TaskList returns the active list.
func (s *Session) TaskList() *domain.TaskList {
	return s.tasks
}

// ReplaceTaskList swaps in a new active list.
func (s *Session) ReplaceTaskList(list *domain.TaskList) {
	s.tasks = list
}

// Commands returns the available commands in help order.
func (s *Session) Commands() []*command.Command {
	return s.registry.Commands()
}

// Dispatch runs one line of user input and returns the reply.
func (s *Session) Dispatch(input string) string {
	if s.logger != nil {
		name, _ := command.Split(input)
		s.logger.Debug("command", "dispatch "+strconv.Quote(name))
	}
	return s.registry.Dispatch(input)
}

// DispatchAll runs each input in order and joins the replies with newlines.
func (s *Session) DispatchAll(inputs ...string) string {
	replies := make([]string, 0, len(inputs))
	for _, in := range inputs {
		replies = append(replies, s.Dispatch(in))
	}
	return strings.Join(replies, "\n")
}

// Load replaces the active list with the one stored at the default path.
func (s *Session) Load(ctx context.Context) error {
	_, err := s.loadTasks.Execute(ctx, usecase.LoadTasksInput{})
	return err
}

// Save writes the active list to the default path.
func (s *Session) Save(ctx context.Context) error {
	_, err := s.saveTasks.Execute(ctx, usecase.SaveTasksInput{})
	return err
}

// Open restores the saved list and returns the greeting.
// A failed load is tolerated; the session starts with an empty list.
func (s *Session) Open() string {
	_ = s.Load(context.Background())
	return s.Dispatch("hello")
}

// Close saves the active list and returns the save reply.
func (s *Session) Close() string {
	return s.Dispatch("save")
}

func (s *Session) registerCommands() {
	for _, cmd := range []*command.Command{
		command.New("hello", "Greets you and introduces "+Name+".", s.hello),
		command.New("bye", "Saves your task list and ends the chat.", s.bye),
		command.New("list", "Lists all tasks on your list.", s.list),
		command.NewWithArgs("mark", "<task number>", "Marks a task as completed.", s.mark),
		command.NewWithArgs("unmark", "<task number>", "Marks a task as incomplete.", s.unmark),
		command.NewWithArgs("todo", "<task description>", "Adds a todo task to your list.", s.todo),
		command.NewWithArgs("deadline", "<task description> /by <yyyy-mm-dd>",
			"Adds a task with a deadline to your list.", s.deadline),
		command.NewWithArgs("event", "<task description> /from <yyyy-mm-dd> /to <yyyy-mm-dd>",
			"Adds an event spanning a date range to your list.", s.event),
		command.NewWithArgs("delete", "<task number>", "Deletes a task by its number.", s.delete),
		command.NewWithArgs("find", "<keyword>", "Finds tasks whose description contains the keyword.", s.find),
		command.NewWithArgs("save", "[file path]", "Saves your task list to disk.", s.save),
		command.NewWithArgs("load", "[file path]", "Loads a previously saved task list from disk.", s.load),
	} {
		s.registry.Register(cmd)
	}
}

func (s *Session) hello(string) command.Result {
	return command.Success(SelfIntroduction())
}

func (s *Session) bye(string) command.Result {
	return command.Success(SignOut)
}

func (s *Session) list(string) command.Result {
	out, err := s.listTasks.Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil {
		return s.unexpected("list", err, "Something went wrong, I couldn't read your task list.")
	}
	if out.Count == 0 {
		return command.Success(emptyListText)
	}
	return command.Success(out.Rendered)
}

func (s *Session) mark(args string) command.Result {
	return s.setCompleted(args, true)
}

func (s *Session) unmark(args string) command.Result {
	return s.setCompleted(args, false)
}

func (s *Session) setCompleted(args string, completed bool) command.Result {
	state := "incomplete."
	if completed {
		state = "completed."
	}

	number, ok := parseNumber(args)
	if !ok {
		return command.UsageError(invalidNumberText)
	}

	out, err := s.setCompletion.Execute(context.Background(), usecase.SetCompletionInput{
		Number:    number,
		Completed: completed,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidTaskNumber):
		return command.UsageError(invalidNumberText)
	case errors.Is(err, domain.ErrAlreadyCompleted), errors.Is(err, domain.ErrAlreadyIncomplete):
		return command.UsageError("Task was already marked " + state + " I'm leaving it as is.\n" +
			s.tasks.Get(number-1).String())
	case err != nil:
		return s.unexpected("mark", err, "Something went wrong, I couldn't update that task.")
	}

	if !out.Changed {
		return command.Success("Task was already marked " + state + "\n" + out.Task.String())
	}
	return command.Success("Roger that. Marking task as " + state + "\n" + out.Task.String())
}

func (s *Session) todo(args string) command.Result {
	return s.add(usecase.AddTaskInput{Kind: domain.KindToDo, Name: args})
}

func (s *Session) deadline(args string) command.Result {
	name, due, found := strings.Cut(args, byDelimiter)
	if !found {
		return command.UsageError("Please provide a task description and deadline.")
	}
	dueDate, err := domain.ParseDate(due)
	if err != nil {
		return command.UsageError("Please provide a valid deadline in the format yyyy-mm-dd.")
	}
	return s.add(usecase.AddTaskInput{Kind: domain.KindDeadline, Name: name, Due: dueDate})
}

func (s *Session) event(args string) command.Result {
	name, span, found := strings.Cut(args, fromDelimiter)
	if !found {
		return command.UsageError("Please provide a valid task description, start time and end time.")
	}

	const badSpan = "Please provide a valid start and end time in the format yyyy-mm-dd, separated by /to."
	from, to, found := strings.Cut(span, toDelimiter)
	if !found {
		return command.UsageError(badSpan)
	}
	start, err := domain.ParseDate(from)
	if err != nil {
		return command.UsageError(badSpan)
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return command.UsageError(badSpan)
	}
	return s.add(usecase.AddTaskInput{Kind: domain.KindEvent, Name: name, Start: start, End: end})
}

func (s *Session) add(in usecase.AddTaskInput) command.Result {
	out, err := s.addTask.Execute(context.Background(), in)
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		return command.UsageError(emptyDescriptionText)
	case err != nil:
		return s.unexpected("add", err, "Something went wrong, I couldn't add that task.")
	}
	return command.Success(fmt.Sprintf(
		"Roger that, I've added the following task to your list:\n%s\nNote, you have %d tasks in your list.",
		out.Task, out.Count))
}

func (s *Session) delete(args string) command.Result {
	number, ok := parseNumber(args)
	if !ok {
		return command.UsageError(invalidNumberText)
	}

	out, err := s.deleteTask.Execute(context.Background(), usecase.DeleteTaskInput{Number: number})
	switch {
	case errors.Is(err, domain.ErrInvalidTaskNumber):
		return command.UsageError(invalidNumberText)
	case err != nil:
		return s.unexpected("delete", err, "Something went wrong, I couldn't delete that task.")
	}
	return command.Success(fmt.Sprintf(
		"Roger that. I've deleted the following task from your list:\n%s\nNote, you have %d tasks in your list.",
		out.Task, out.Remaining))
}

func (s *Session) find(args string) command.Result {
	out, err := s.findTasks.Execute(context.Background(), usecase.FindTasksInput{Keyword: args})
	switch {
	case errors.Is(err, domain.ErrEmptyKeyword):
		return command.UsageError("Please provide a keyword to search for.")
	case err != nil:
		return s.unexpected("find", err, "Something went wrong, I couldn't search your task list.")
	}
	if len(out.Indices) == 0 {
		return command.Success(fmt.Sprintf("I couldn't find any tasks matching %q.", strings.TrimSpace(args)))
	}
	return command.Success("Here are the matching tasks in your list:\n" + out.Rendered)
}

func (s *Session) save(args string) command.Result {
	out, err := s.saveTasks.Execute(context.Background(), usecase.SaveTasksInput{Path: args})
	switch {
	case errors.Is(err, domain.ErrInvalidPath):
		return command.UsageError(invalidPathText)
	case err != nil:
		return s.unexpected("save", err, fmt.Sprintf(
			"Something went wrong, I couldn't save your task list to %s. I'm leaving it as is.", s.targetPath(args)))
	}
	return command.Success(fmt.Sprintf("I've saved your task list to %s.", out.Path))
}

func (s *Session) load(args string) command.Result {
	out, err := s.loadTasks.Execute(context.Background(), usecase.LoadTasksInput{Path: args})
	switch {
	case errors.Is(err, domain.ErrInvalidPath):
		return command.UsageError(invalidPathText)
	case err != nil:
		return s.unexpected("load", err, fmt.Sprintf(
			"Something went wrong, I couldn't load your task list from %s. I'm leaving it as is.", s.targetPath(args)))
	}
	return command.Success(fmt.Sprintf("I've loaded your task list from %s.", out.Path))
}

// unexpected logs err and wraps reply as an unexpected error.
func (s *Session) unexpected(op string, err error, reply string) command.Result {
	if s.logger != nil {
		s.logger.Error("command", fmt.Sprintf("%s: %v", op, err))
	}
	return command.UnexpectedError(reply)
}

func (s *Session) targetPath(args string) string {
	if path := strings.TrimSpace(args); path != "" {
		return path
	}
	return s.storePath
}

func parseNumber(args string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return 0, false
	}
	return n, true
}

var _ domain.TaskListHolder = (*Session)(nil)
