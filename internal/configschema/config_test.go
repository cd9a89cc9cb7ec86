package configschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/testingx"
)

func TestValidatePackage(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr string
	}{
		{name: "valid two segments", pkg: "com.valid"},
		{name: "valid nested", pkg: "com.generator.mock"},
		{name: "underscores and digits", pkg: "org.acme_2.orders9"},
		{name: "invalid characters", pkg: "invalid@.pkg.name", wantErr: "naming guidelines"},
		{name: "single segment", pkg: "com", wantErr: "naming guidelines"},
		{name: "upper case", pkg: "com.Acme", wantErr: "naming guidelines"},
		{name: "leading digit", pkg: "1com.acme", wantErr: "naming guidelines"},
		{name: "reserved keyword", pkg: "a.name.with.package", wantErr: "'package'"},
		{name: "reserved keyword first", pkg: "new.orders", wantErr: "'new'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackage(tt.pkg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
			assert.Contains(t, errors.Message(err), tt.wantErr)
		})
	}
}

func TestValidateDSL(t *testing.T) {
	// wsdl2rest only supports the XML-context flavors
	assert.Error(t, ValidateDSL("java", true))
	assert.NoError(t, ValidateDSL("spring", true))
	assert.NoError(t, ValidateDSL("blueprint", true))
	assert.NoError(t, ValidateDSL("spring-boot", true))

	// without wsdl2rest every flavor is accepted
	for _, dsl := range []string{"java", "spring", "spring-boot", "blueprint"} {
		assert.NoError(t, ValidateDSL(dsl, false), dsl)
	}

	assert.Error(t, ValidateDSL("xml", false))
	assert.Error(t, ValidateDSL("springy", false))
	assert.Error(t, ValidateDSL("", false))
}

func TestValidateVersion(t *testing.T) {
	for _, v := range []string{"2.18.1", "2.22.2", "3.0.0-M1", "2.21.0.fuse-710018"} {
		assert.NoError(t, ValidateVersion(v), v)
	}
	for _, v := range []string{"latest", "two.eighteen", ""} {
		assert.Error(t, ValidateVersion(v), v)
	}
}

func TestValidateEndpoint(t *testing.T) {
	for _, v := range []string{"", "http://localhost:8081/jaxrs", "https://svc.example.com/ws/address"} {
		assert.NoError(t, ValidateEndpoint(v), v)
	}
	for _, v := range []string{"not a url", "jaxws", "/jaxrs"} {
		testingx.AssertError(t, ValidateEndpoint(v), errors.CodeInvalidArgument)
	}
}

func TestDSLHasXMLContext(t *testing.T) {
	assert.True(t, DSLSpring.HasXMLContext())
	assert.True(t, DSLSpringBoot.HasXMLContext())
	assert.True(t, DSLBlueprint.HasXMLContext())
	assert.False(t, DSLJava.HasXMLContext())
	assert.False(t, DSL("other").HasXMLContext())
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		Name:         "MyAppMock",
		CamelVersion: "2.18.2",
		CamelDSL:     DSLSpring,
		Package:      "com.generator.mock",
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing name", mutate: func(c *Config) { c.Name = "" }},
		{name: "missing version", mutate: func(c *Config) { c.CamelVersion = "" }},
		{name: "unknown dsl", mutate: func(c *Config) { c.CamelDSL = "xml" }},
		{name: "bad package", mutate: func(c *Config) { c.Package = "a.name.with.package" }},
		{name: "wsdl2rest without wsdl", mutate: func(c *Config) { c.WSDL2Rest = true; c.OutDirectory = "src/main/java" }},
		{name: "wsdl2rest with java", mutate: func(c *Config) {
			c.WSDL2Rest = true
			c.CamelDSL = DSLJava
			c.WSDL = "address.wsdl"
			c.OutDirectory = "src/main/java"
		}},
		{name: "bad jaxrs url", mutate: func(c *Config) { c.JaxRSURL = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
		})
	}

	withWSDL := base
	withWSDL.WSDL2Rest = true
	withWSDL.WSDL = "http://localhost:3000/helloworldservice?wsdl"
	withWSDL.OutDirectory = "src/main/java"
	withWSDL.JaxRSURL = "http://localhost:8081/rest"
	withWSDL.JaxWSURL = "http://localhost:3000/helloworldservice"
	assert.NoError(t, withWSDL.Validate())
}

func TestDefaultPackage(t *testing.T) {
	assert.Equal(t, "com.myappmock", DefaultPackage("MyAppMock"))
	assert.Equal(t, "com.orderservice", DefaultPackage("order-service"))
	assert.Equal(t, "com.app", DefaultPackage("42"))
	assert.Equal(t, "com.app", DefaultPackage("new"))
	assert.NoError(t, ValidatePackage(DefaultPackage("Hello World 2")))
}

func TestPackagePath(t *testing.T) {
	cfg := Config{Package: "com.generator.mock"}
	assert.Equal(t, "com/generator/mock", cfg.PackagePath())
}

func TestAnswersRoundTrip(t *testing.T) {
	dir := t.TempDir()

	missing, err := LoadAnswers(dir)
	require.NoError(t, err)
	assert.Nil(t, missing)

	cfg := Config{
		Name:         "Address2",
		CamelVersion: "2.22.2",
		CamelDSL:     DSLBlueprint,
		Package:      "com.mock.address2",
		WSDL:         "/tmp/address.wsdl",
		OutDirectory: "src/main/java",
		JaxRSURL:     "http://localhost:8081/rest",
	}
	require.NoError(t, SaveAnswers(dir, AnswersFromConfig(cfg, "v0.1.0")))

	data, err := os.ReadFile(filepath.Join(dir, AnswersFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "camelDSL: blueprint")
	assert.NotContains(t, string(data), "jaxws")

	loaded, err := LoadAnswers(dir)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "v0.1.0", loaded.Generator)
	assert.Equal(t, "com.mock.address2", loaded.Package)
	assert.Equal(t, "http://localhost:8081/rest", loaded.JaxRS)
}

func TestLoadAnswersMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, AnswersFile), []byte("name: [unterminated"), 0644))

	_, err := LoadAnswers(dir)
	assert.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
}
