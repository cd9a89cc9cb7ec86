package wsdl2rest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/core/log"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/toolrunner"
)

// LogFile is the file the converter writes its log4j output to, in the
// project directory.
const LogFile = "wsdl2rest.log"

// ErrUnsupportedDSL is returned for flavors without an XML routing context.
var ErrUnsupportedDSL = errors.New(errors.CodeFailedPrecondition,
	"wsdl2rest does not support the java DSL; use spring, spring-boot or blueprint")

// State is the lifecycle position of one converter run.
type State int

const (
	NotStarted State = iota
	Launched
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Launched:
		return "launched"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ExitError reports a converter process that exited unsuccessfully.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("wsdl2rest exited with code %d; check %s in the project directory or re-run with --debug",
		e.Code, LogFile)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Request names the project to convert. Config supplies the DSL, the WSDL,
// the output directory and the endpoint overrides.
type Request struct {
	Config     configschema.Config
	ProjectDir string
}

// Result is the outcome of Run. It is returned alongside errors whenever an
// invocation was assembled.
type Result struct {
	Invocation Invocation
	State      State
	ExitCode   int
	Duration   time.Duration
	Output     string
}

// Invoker runs the converter.
type Invoker struct {
	java      string
	jarDir    string
	logConfig string
	timeout   time.Duration
	sink      io.Writer
	logger    log.Logger
	verbose   bool
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithSink receives converter output lines in debug mode.
func WithSink(w io.Writer) Option {
	return func(inv *Invoker) {
		inv.sink = w
	}
}

// WithLogger sets the logger of the invoker.
func WithLogger(logger log.Logger) Option {
	return func(inv *Invoker) {
		inv.logger = logger
	}
}

// WithTimeout bounds one converter run; zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(inv *Invoker) {
		inv.timeout = d
	}
}

// WithVerbose prints the command line through the tool runner.
func WithVerbose(enabled bool) Option {
	return func(inv *Invoker) {
		inv.verbose = enabled
	}
}

// NewInvoker creates an invoker for the converter installed under s.
func NewInvoker(s *settings.Settings, opts ...Option) *Invoker {
	inv := &Invoker{
		java:      s.Java,
		jarDir:    s.JarDir(),
		logConfig: s.LogConfigPath(),
		timeout:   s.WSDL2RestTimeout,
		logger:    log.Nop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.logger == nil {
		inv.logger = log.Nop()
	}
	return inv
}

// Prepare resolves the invocation for req without launching anything.
func (i *Invoker) Prepare(req Request) (Invocation, error) {
	cfg := req.Config
	if !cfg.CamelDSL.HasXMLContext() {
		return Invocation{}, ErrUnsupportedDSL
	}

	jar, ok := FindJar(i.jarDir)
	if !ok {
		return Invocation{}, errors.Newf(errors.CodeNotFound,
			"no wsdl2rest jar found in %s; set CAMELGEN_WSDL2REST_HOME to the converter installation", i.jarDir)
	}

	wsdl, err := NormalizeWSDL(cfg.WSDL)
	if err != nil {
		return Invocation{}, err
	}
	logConfig, err := FileURI(i.logConfig)
	if err != nil {
		return Invocation{}, err
	}

	outDir := cfg.OutDirectory
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(req.ProjectDir, filepath.FromSlash(outDir))
	}

	return Invocation{
		ID:          uuid.NewString(),
		JarPath:     jar,
		LogConfig:   logConfig,
		WSDL:        wsdl,
		OutputPath:  outDir,
		ContextPath: filepath.Join(req.ProjectDir, filepath.FromSlash(ContextPath(cfg.CamelDSL))),
		DSL:         cfg.CamelDSL,
		JaxRSURL:    cfg.JaxRSURL,
		JaxWSURL:    cfg.JaxWSURL,
		Debug:       cfg.Debug,
	}, nil
}

// Run converts the WSDL of req into the project. It always waits for the
// converter to exit, unless the configured timeout expires first.
//
// Parameters:
//   - ctx: Context for cancellation
//   - req: Project directory and configuration
//
// Returns:
//   - *Result: Invocation, final state and exit code
//   - error: ErrUnsupportedDSL, NOT_FOUND, *ExitError, or ABORTED on timeout
func (i *Invoker) Run(ctx context.Context, req Request) (*Result, error) {
	inv, err := i.Prepare(req)
	if err != nil {
		if errors.Is(err, ErrUnsupportedDSL) {
			i.logger.Warn("wsdl2rest skipped", log.Str("dsl", req.Config.CamelDSL.String()))
		}
		return &Result{State: NotStarted, Invocation: inv}, err
	}

	logger := i.logger.With(log.Str("invocation", inv.ID))
	result := &Result{Invocation: inv, State: NotStarted}

	if err := os.MkdirAll(inv.OutputPath, 0755); err != nil {
		return result, errors.Wrapf(errors.CodeInternal, "wsdl2rest", err, "failed to create output directory %s", inv.OutputPath)
	}
	if err := os.MkdirAll(filepath.Dir(inv.ContextPath), 0755); err != nil {
		return result, errors.Wrapf(errors.CodeInternal, "wsdl2rest", err, "failed to create context directory for %s", inv.ContextPath)
	}

	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	var sink io.Writer
	if inv.Debug {
		sink = i.sink
	}

	runner := toolrunner.NewRunner(req.ProjectDir)
	runner.SetVerbose(i.verbose)

	logger.Info("calling wsdl2rest", log.Str("command", inv.CommandLine(i.java)))
	result.State = Launched
	out, err := runner.Stream(ctx, sink, i.java, inv.Args()...)
	if out != nil {
		result.ExitCode = out.ExitCode
		result.Duration = out.Duration
		result.Output = out.Stdout + out.Stderr
	}

	if err != nil {
		result.State = Failed
		logger.Error(err, "wsdl2rest failed", log.Int("exitCode", result.ExitCode))
		if errors.IsCode(err, errors.CodeAborted) && ctx.Err() == nil && result.ExitCode != 0 {
			return result, &ExitError{Code: result.ExitCode, Err: err}
		}
		return result, err
	}

	result.State = Succeeded
	logger.Info("wsdl2rest finished", log.Dur("duration", result.Duration))
	return result, nil
}
