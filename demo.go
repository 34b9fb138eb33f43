package funcdemo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrUnknownDemo is returned by Runner.Select for names it does not know.
var ErrUnknownDemo = errors.New("funcdemo: unknown demo")

// DemoFunc prints one demonstration to w.
type DemoFunc func(w io.Writer, log *slog.Logger) error

// Demo is a named demonstration.
type Demo struct {
	Name string
	Run  DemoFunc
}

// DemoError reports which demo failed.
type DemoError struct {
	Name string
	Err  error
}

func (e *DemoError) Error() string {
	return fmt.Sprintf("demo %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *DemoError) Unwrap() error {
	return e.Err
}

// DefaultDemos returns the lessons in presentation order.
func DefaultDemos() []Demo {
	return []Demo{
		{Name: "extension-function", Run: extensionFunction},
		{Name: "member-extension", Run: memberExtension},
		{Name: "function-reference", Run: functionReference},
		{Name: "lambda", Run: lambda},
		{Name: "returned-function", Run: returnedFunction},
		{Name: "closure", Run: closure},
	}
}

// Runner executes demos sequentially.
type Runner struct {
	Demos  []Demo
	Logger *slog.Logger
}

// NewRunner returns a Runner over DefaultDemos.
func NewRunner(log *slog.Logger) Runner {
	return Runner{Demos: DefaultDemos(), Logger: log}
}

// DemoNames lists the runner's demos in order.
func (r Runner) DemoNames() []string {
	return lo.Map(r.Demos, func(d Demo, _ int) string {
		return d.Name
	})
}

// Lookup finds a demo by name.
func (r Runner) Lookup(name string) mo.Option[Demo] {
	return mo.TupleToOption(lo.Find(r.Demos, func(d Demo) bool {
		return d.Name == name
	}))
}

// Select returns a Runner restricted to names. Order follows r, not names.
// No names selects everything.
func (r Runner) Select(names ...string) (Runner, error) {
	if len(names) == 0 {
		return r, nil
	}

	unknown := lo.Filter(names, func(name string, _ int) bool {
		return r.Lookup(name).IsAbsent()
	})
	if len(unknown) > 0 {
		return Runner{}, fmt.Errorf("%w: %s", ErrUnknownDemo, strings.Join(unknown, ", "))
	}

	out := r
	out.Demos = lo.Filter(r.Demos, func(d Demo, _ int) bool {
		return lo.Contains(names, d.Name)
	})
	return out, nil
}

// Run executes every demo in order, stopping at the first failure.
// ctx is checked between demos.
func (r Runner) Run(ctx context.Context, w io.Writer) error {
	log := r.logger()
	for _, d := range r.Demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("demo.start", "name", d.Name)
		if err := d.Run(w, log); err != nil {
			log.Error("demo.failed", "name", d.Name, "err", err)
			return &DemoError{Name: d.Name, Err: err}
		}
		log.Debug("demo.done", "name", d.Name)
	}
	return nil
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

func writeLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}

// ============================================================================
// Lessons
// ============================================================================

func extensionFunction(w io.Writer, _ *slog.Logger) error {
	for _, input := range []string{"john", "Williams"} {
		name, err := CapitalizeFirst(input)
		if err != nil {
			return err
		}
		if err := writeLine(w, "My name is "+name); err != nil {
			return err
		}
	}
	return nil
}

func memberExtension(_ io.Writer, log *slog.Logger) error {
	a := ClassA{Observer: func(msg string) {
		log.Debug("member extension called", "result", msg)
	}}
	a.CallExFunction(ClassB{})
	return nil
}

func functionReference(w io.Writer, _ *slog.Logger) error {
	return writeLine(w, SayHello("Greg", Greet))
}

func lambda(w io.Writer, _ *slog.Logger) error {
	return writeLine(w, SayHello("Martin", func(name string) string {
		return "Hello, my name is " + name
	}))
}

func returnedFunction(w io.Writer, _ *slog.Logger) error {
	double := Scale(2.0)
	return writeLine(w, FormatDouble(double(3.0)))
}

func closure(w io.Writer, _ *slog.Logger) error {
	return writeLine(w, FormatList(FilterNamesByLength(5)))
}
