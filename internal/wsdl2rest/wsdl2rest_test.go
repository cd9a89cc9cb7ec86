package wsdl2rest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/generators"
	"go.eggybyte.com/camelgen/internal/projectfs"
	"go.eggybyte.com/camelgen/internal/settings"
	"go.eggybyte.com/camelgen/internal/templates"
	"go.eggybyte.com/camelgen/internal/testingx"
)

const jarName = "wsdl2rest-impl-fatjar-0.8.0.jar"

func TestContextPathAndFlag(t *testing.T) {
	assert.Equal(t, "src/main/resources/META-INF/spring/camel-context.xml", ContextPath(configschema.DSLSpring))
	assert.Equal(t, "src/main/resources/spring/camel-context.xml", ContextPath(configschema.DSLSpringBoot))
	assert.Equal(t, "src/main/resources/OSGI-INF/blueprint/blueprint.xml", ContextPath(configschema.DSLBlueprint))
	assert.Empty(t, ContextPath(configschema.DSLJava))

	assert.Equal(t, "--blueprint-context", ContextFlag(configschema.DSLBlueprint))
	assert.Equal(t, "--camel-context", ContextFlag(configschema.DSLSpring))
	assert.Equal(t, "--camel-context", ContextFlag(configschema.DSLSpringBoot))
}

func TestFindJar(t *testing.T) {
	dir := t.TempDir()
	testingx.WriteTree(t, dir, map[string]string{
		jarName + ".original":          "",
		"wsdl2rest-0.8.0-sources.jar":  "",
		"commons-lang.jar":             "",
		"wsdl2rest.txt":                "",
		jarName:                        "",
		"wsdl2rest-classes/Main.class": "",
	})

	jar, ok := FindJar(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, jarName), jar)

	_, ok = FindJar(filepath.Join(dir, "missing"))
	assert.False(t, ok)

	onlyOriginal := t.TempDir()
	testingx.WriteTree(t, onlyOriginal, map[string]string{jarName + ".original": ""})
	_, ok = FindJar(onlyOriginal)
	assert.False(t, ok)
}

func TestNormalizeWSDL(t *testing.T) {
	for _, remote := range []string{
		"http://localhost:3000/helloworldservice?wsdl",
		"https://example.com/Address.wsdl",
		"file:///tmp/address.wsdl",
	} {
		got, err := NormalizeWSDL(remote)
		require.NoError(t, err)
		assert.Equal(t, remote, got)
	}

	dir := t.TempDir()
	local := filepath.Join(dir, "address.wsdl")
	got, err := NormalizeWSDL(local)
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(local), got)

	wd, err := os.Getwd()
	require.NoError(t, err)
	got, err = NormalizeWSDL("address.wsdl")
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(wd, "address.wsdl")), got)

	_, err = NormalizeWSDL("  ")
	testingx.AssertError(t, err, errors.CodeInvalidArgument)
}

func TestInvocationArgs(t *testing.T) {
	inv := Invocation{
		JarPath:     "/opt/wsdl2rest/target/" + jarName,
		LogConfig:   "file:///opt/wsdl2rest/config/logging.properties",
		WSDL:        "http://localhost:3000/helloworldservice?wsdl",
		OutputPath:  "/work/demo/src/main/java",
		ContextPath: "/work/demo/" + SpringContextPath,
		DSL:         configschema.DSLSpring,
	}

	want := []string{
		"-Dlog4j.configuration=file:///opt/wsdl2rest/config/logging.properties",
		"-jar", "/opt/wsdl2rest/target/" + jarName,
		"--wsdl", "http://localhost:3000/helloworldservice?wsdl",
		"--out", "/work/demo/src/main/java",
		"--camel-context", "/work/demo/" + SpringContextPath,
	}
	if diff := cmp.Diff(want, inv.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}

	inv.DSL = configschema.DSLBlueprint
	inv.JaxRSURL = "http://localhost:8081/rest"
	inv.JaxWSURL = "http://localhost:3000/helloworldservice"
	args := inv.Args()
	assert.Equal(t, "--blueprint-context", args[8])
	if diff := cmp.Diff([]string{
		"--jaxrs", "http://localhost:8081/rest",
		"--jaxws", "http://localhost:3000/helloworldservice",
	}, args[10:]); diff != "" {
		t.Errorf("endpoint args mismatch (-want +got):\n%s", diff)
	}
}

// installConverter creates a converter home with a placeholder jar and a fake
// java that records its arguments and writes the context file.
func installConverter(t *testing.T, javaLines ...string) (*settings.Settings, string) {
	t.Helper()
	home := t.TempDir()
	testingx.WriteTree(t, home, map[string]string{
		"target/" + jarName:         "",
		"config/logging.properties": "log4j.rootLogger=INFO\n",
	})

	argsFile := filepath.Join(home, "args.txt")
	if len(javaLines) == 0 {
		javaLines = []string{
			`printf '%s\n' "$@" > "` + argsFile + `"`,
			`ctx=""`,
			`while [ $# -gt 0 ]; do`,
			`  case "$1" in`,
			`    --camel-context|--blueprint-context) ctx="$2"; shift ;;`,
			`  esac`,
			`  shift`,
			`done`,
			`mkdir -p "$(dirname "$ctx")"`,
			`echo "<generated/>" > "$ctx"`,
			`echo "generated $ctx"`,
			`echo "warning from converter" >&2`,
		}
	}
	java := testingx.FakeExecutable(t, home, "java", javaLines...)

	return &settings.Settings{
		WSDL2RestHome: home,
		Java:          java,
	}, argsFile
}

func blueprintConfig() configschema.Config {
	return configschema.Config{
		Name:         "Address",
		CamelVersion: "2.22.2",
		CamelDSL:     configschema.DSLBlueprint,
		Package:      "com.mock.address",
		WSDL:         "http://localhost:3000/helloworldservice?wsdl",
		OutDirectory: "src/main/java",
		JaxRSURL:     "http://localhost:8081/rest",
		WSDL2Rest:    true,
	}
}

func TestRunBlueprintProject(t *testing.T) {
	s, argsFile := installConverter(t)
	dest := t.TempDir()
	cfg := blueprintConfig()

	scaffolder := generators.NewScaffolder(projectfs.New(dest), templates.NewLoader(nil), nil)
	_, err := scaffolder.Materialize(cfg)
	require.NoError(t, err)

	logger := testingx.NewMockLogger(t)
	result, err := NewInvoker(s, WithLogger(logger)).Run(context.Background(), Request{Config: cfg, ProjectDir: dest})
	require.NoError(t, err)

	assert.Equal(t, Succeeded, result.State)
	assert.Equal(t, 0, result.ExitCode)
	assert.NotEmpty(t, result.Invocation.ID)

	contextFile := filepath.Join(dest, BlueprintContextPath)
	content, err := os.ReadFile(contextFile)
	require.NoError(t, err)
	assert.Equal(t, "<generated/>\n", string(content))
	assert.NoFileExists(t, filepath.Join(dest, "pom.xml.wsdl2rest"))
	assert.FileExists(t, filepath.Join(dest, "pom.xml"))

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	want := []string{
		"-Dlog4j.configuration=file://" + filepath.ToSlash(filepath.Join(s.WSDL2RestHome, "config", "logging.properties")),
		"-jar", filepath.Join(s.JarDir(), jarName),
		"--wsdl", "http://localhost:3000/helloworldservice?wsdl",
		"--out", filepath.Join(dest, "src", "main", "java"),
		"--blueprint-context", contextFile,
		"--jaxrs", "http://localhost:8081/rest",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSuffix(string(recorded), "\n"), "\n")); diff != "" {
		t.Errorf("java arguments mismatch (-want +got):\n%s", diff)
	}

	logger.AssertLogged("INFO", "calling wsdl2rest")
	logger.AssertLogged("INFO", "wsdl2rest finished")
}

func TestRunDebugStreamsOutput(t *testing.T) {
	s, _ := installConverter(t)
	dest := t.TempDir()
	cfg := blueprintConfig()
	cfg.CamelDSL = configschema.DSLSpring
	cfg.Debug = true

	var sink bytes.Buffer
	result, err := NewInvoker(s, WithSink(&sink)).Run(context.Background(), Request{Config: cfg, ProjectDir: dest})
	require.NoError(t, err)

	assert.Contains(t, sink.String(), "stdout: generated "+filepath.Join(dest, SpringContextPath))
	assert.Contains(t, sink.String(), "stderr: warning from converter")
	assert.Contains(t, result.Output, "warning from converter")
}

func TestRunQuietWithoutDebug(t *testing.T) {
	s, _ := installConverter(t)
	cfg := blueprintConfig()

	var sink bytes.Buffer
	_, err := NewInvoker(s, WithSink(&sink)).Run(context.Background(), Request{Config: cfg, ProjectDir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, sink.String())
}

func TestRunUnsupportedDSL(t *testing.T) {
	s, argsFile := installConverter(t)
	cfg := blueprintConfig()
	cfg.CamelDSL = configschema.DSLJava
	logger := testingx.NewMockLogger(t)

	result, err := NewInvoker(s, WithLogger(logger)).Run(context.Background(), Request{Config: cfg, ProjectDir: t.TempDir()})
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrUnsupportedDSL))
	assert.Equal(t, errors.CodeFailedPrecondition, errors.CodeOf(err))
	assert.Equal(t, NotStarted, result.State)
	assert.NoFileExists(t, argsFile)
	logger.AssertLogged("WARN", "wsdl2rest skipped")
}

func TestRunMissingJar(t *testing.T) {
	s := &settings.Settings{WSDL2RestHome: t.TempDir(), Java: "java"}

	result, err := NewInvoker(s).Run(context.Background(), Request{Config: blueprintConfig(), ProjectDir: t.TempDir()})
	testingx.AssertError(t, err, errors.CodeNotFound)
	assert.Equal(t, NotStarted, result.State)
	assert.Contains(t, errors.Message(err), "CAMELGEN_WSDL2REST_HOME")
}

func TestRunExitError(t *testing.T) {
	s, _ := installConverter(t, `echo "cannot parse wsdl" >&2`, "exit 2")

	result, err := NewInvoker(s).Run(context.Background(), Request{Config: blueprintConfig(), ProjectDir: t.TempDir()})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	assert.Equal(t, errors.CodeAborted, errors.CodeOf(err))
	assert.Contains(t, err.Error(), LogFile)
	assert.Contains(t, err.Error(), "--debug")
	assert.Equal(t, Failed, result.State)
	assert.Contains(t, result.Output, "cannot parse wsdl")
}

func TestRunKilledBySignal(t *testing.T) {
	s, _ := installConverter(t, `echo "out of memory" >&2`, "kill -9 $$")

	result, err := NewInvoker(s).Run(context.Background(), Request{Config: blueprintConfig(), ProjectDir: t.TempDir()})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, -1, exitErr.Code)
	assert.Contains(t, err.Error(), LogFile)
	assert.Contains(t, err.Error(), "--debug")
	assert.Equal(t, Failed, result.State)
}

func TestRunTimeout(t *testing.T) {
	s, _ := installConverter(t, "exec sleep 5")
	s.WSDL2RestTimeout = 100 * time.Millisecond

	result, err := NewInvoker(s).Run(context.Background(), Request{Config: blueprintConfig(), ProjectDir: t.TempDir()})
	testingx.AssertError(t, err, errors.CodeAborted)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Equal(t, Failed, result.State)
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	s, _ := installConverter(t)
	dest := t.TempDir()
	cfg := blueprintConfig()
	cfg.OutDirectory = "generated/rest"

	_, err := NewInvoker(s).Run(context.Background(), Request{Config: cfg, ProjectDir: dest})
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dest, "generated", "rest"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", NotStarted.String())
	assert.Equal(t, "launched", Launched.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
}
