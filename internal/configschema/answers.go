package configschema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go.eggybyte.com/camelgen/internal/core/errors"
)

// AnswersFile is the name of the stored-answers file written to the root of
// every generated project.
const AnswersFile = ".camelgen.yaml"

// Answers records the values a project was generated with. Re-running the
// generator in the same directory offers them as defaults.
type Answers struct {
	Generator    string `yaml:"generator,omitempty"`
	Name         string `yaml:"name,omitempty"`
	CamelVersion string `yaml:"camelVersion,omitempty"`
	CamelDSL     string `yaml:"camelDSL,omitempty"`
	Package      string `yaml:"package,omitempty"`
	WSDL         string `yaml:"wsdl,omitempty"`
	OutDirectory string `yaml:"outdirectory,omitempty"`
	JaxRS        string `yaml:"jaxrs,omitempty"`
	JaxWS        string `yaml:"jaxws,omitempty"`
}

// AnswersFromConfig captures cfg for storage.
func AnswersFromConfig(cfg Config, generator string) Answers {
	return Answers{
		Generator:    generator,
		Name:         cfg.Name,
		CamelVersion: cfg.CamelVersion,
		CamelDSL:     string(cfg.CamelDSL),
		Package:      cfg.Package,
		WSDL:         cfg.WSDL,
		OutDirectory: cfg.OutDirectory,
		JaxRS:        cfg.JaxRSURL,
		JaxWS:        cfg.JaxWSURL,
	}
}

// LoadAnswers reads the stored-answers file from dir. A missing file is not
// an error: it returns nil answers.
func LoadAnswers(dir string) (*Answers, error) {
	path := filepath.Join(dir, AnswersFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "read "+AnswersFile, err)
	}

	var answers Answers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, "parse "+AnswersFile, err,
			"failed to parse %s", path)
	}
	return &answers, nil
}

// SaveAnswers writes answers to dir, replacing any previous file.
func SaveAnswers(dir string, answers Answers) error {
	var buf bytes.Buffer
	buf.WriteString("# Generated by camelgen. Values are offered as defaults on the next run.\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(answers); err != nil {
		return errors.Wrap(errors.CodeInternal, "encode answers", err)
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(errors.CodeInternal, "encode answers", err)
	}

	path := filepath.Join(dir, AnswersFile)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.CodeInternal, fmt.Sprintf("write %s", path), err)
	}
	return nil
}
