package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout(), stderr
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(prevOut, prevErr)
		SetVerbose(false)
		SetJSONOutput(false)
		SetNonInteractive(false)
	})
	return &out, &errOut
}

func TestOutputLevels(t *testing.T) {
	out, errOut := captureOutput(t)

	Info("Creating folders")
	Success("done")
	Warning("careful")
	Error("broken: %d", 3)

	assert.Contains(t, out.String(), "INFO: Creating folders")
	assert.Contains(t, out.String(), "SUCCESS: done")
	assert.Contains(t, out.String(), "WARN: careful")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "ERROR: broken: 3")
}

func TestDebugRequiresVerbose(t *testing.T) {
	out, _ := captureOutput(t)

	Debug("hidden")
	assert.Empty(t, out.String())

	SetVerbose(true)
	Debug("shown %s", "now")
	assert.Contains(t, out.String(), "DEBUG: shown now")
}

func TestJSONOutput(t *testing.T) {
	out, _ := captureOutput(t)
	SetJSONOutput(true)

	Success("generated %s", "pom.xml")
	Banner()

	var msg Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &msg))
	assert.Equal(t, LevelSuccess, msg.Level)
	assert.Equal(t, "generated pom.xml", msg.Text)
}

func TestStepAndKeyValue(t *testing.T) {
	out, _ := captureOutput(t)

	Step(1, 3, "Resolving parameters")
	KeyValue("camel DSL", "blueprint")

	assert.Contains(t, out.String(), "[1/3] Resolving parameters")
	assert.Contains(t, out.String(), "camel DSL")
	assert.Contains(t, out.String(), "blueprint")
}

func TestPrompterAsk(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name    string
		input   string
		def     string
		want    string
		wantErr error
	}{
		{name: "explicit answer", input: "blueprint\n", def: "spring", want: "blueprint"},
		{name: "empty selects default", input: "\n", def: "spring", want: "spring"},
		{name: "answer without newline", input: "java", def: "spring", want: "java"},
		{name: "exhausted input", input: "", def: "spring", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Ask("Camel DSL type", tt.def)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Camel DSL type ("+tt.def+")")
		})
	}
}

func TestPrompterReject(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	p.Reject(errors.New("Unsupported package name."))

	assert.Equal(t, ">> Unsupported package name.\n", out.String())
}

func TestPrompterConfirm(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	assert.True(t, NewPrompter(strings.NewReader("y\n"), &out).Confirm("Overwrite %s?", "pom.xml"))
	assert.False(t, NewPrompter(strings.NewReader("\n"), &out).Confirm("Overwrite?"))

	SetNonInteractive(true)
	defer SetNonInteractive(false)
	assert.True(t, NewPrompter(strings.NewReader(""), &out).Confirm("Overwrite?"))
}
