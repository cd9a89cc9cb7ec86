package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/camelgen/internal/configschema"
	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/testingx"
)

func mockConfig() configschema.Config {
	return configschema.Config{
		Name:         "MyAppMock",
		CamelVersion: "2.18.2",
		CamelDSL:     configschema.DSLSpring,
		Package:      "com.generator.mock",
	}
}

func TestEmbeddedFlavors(t *testing.T) {
	flavors, err := NewLoader(nil).Flavors()
	require.NoError(t, err)
	assert.Equal(t, []string{"blueprint", "java", "spring", "spring-boot"}, flavors)
}

func TestEmbeddedListIncludesDotfiles(t *testing.T) {
	files, err := NewLoader(nil).List("spring")
	require.NoError(t, err)

	assert.Contains(t, files, ".gitignore")
	assert.Contains(t, files, "pom.xml")
	assert.Contains(t, files, "pom.xml.wsdl2rest")
	assert.Contains(t, files, "src/main/resources/META-INF/spring/camel-context.xml")
}

func TestEmbeddedTemplatesRender(t *testing.T) {
	problems, err := NewLoader(nil).ValidateAll()
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestRenderSpringPom(t *testing.T) {
	out, err := NewLoader(nil).LoadAndRender("spring/pom.xml", NewData(mockConfig()))
	require.NoError(t, err)

	pom := string(out)
	assert.Contains(t, pom, "<groupId>com.generator.mock</groupId>")
	assert.Contains(t, pom, "<artifactId>MyAppMock</artifactId>")
	assert.Contains(t, pom, "<camel.version>2.18.2</camel.version>")
	assert.Contains(t, pom, "${camel.version}")
}

func TestRenderKeepsCamelPlaceholders(t *testing.T) {
	out, err := NewLoader(nil).LoadAndRender("spring/src/main/resources/META-INF/spring/camel-context.xml", NewData(mockConfig()))
	require.NoError(t, err)

	assert.Contains(t, string(out), "{{greeting}}")
	assert.Contains(t, string(out), `id="MyAppMock-context"`)
}

func TestIsMarkup(t *testing.T) {
	assert.True(t, IsMarkup("spring/pom.xml"))
	assert.True(t, IsMarkup("blueprint/pom.xml.wsdl2rest"))
	assert.True(t, IsMarkup("blueprint/src/main/resources/OSGI-INF/blueprint/blueprint.xml"))
	assert.False(t, IsMarkup("spring/README.md"))
	assert.False(t, IsMarkup("spring/src/main/resources/application.properties"))
}

func TestRenderEscapesMarkupValues(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})
	cfg := mockConfig()
	cfg.Name = `Orders & <Billing>`
	data := NewData(cfg)

	out, err := loader.Render("pom.xml", `<name><%= .UserProps.Name %></name><id v="<%= .UserProps.Name %>"/>`, data)
	require.NoError(t, err)
	assert.Equal(t, `<name>Orders &amp; &lt;Billing&gt;</name><id v="Orders &amp; &lt;Billing&gt;"/>`, string(out))

	out, err = loader.Render("README.md", "# <%= .UserProps.Name %>", data)
	require.NoError(t, err)
	assert.Equal(t, "# Orders & <Billing>", string(out))
}

func TestRenderErrors(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})

	_, err := loader.Render("broken.xml", "<%= .UserProps.Name ", Data{})
	testingx.AssertError(t, err, errors.CodeInternal)

	_, err = loader.Render("unknown.xml", "<%= .UserProps.Missing %>", Data{})
	testingx.AssertError(t, err, errors.CodeInternal)

	_, err = loader.Load("spring/pom.xml")
	testingx.AssertError(t, err, errors.CodeNotFound)
}

func TestCustomTree(t *testing.T) {
	fsys := fstest.MapFS{
		"spring/pom.xml":         {Data: []byte("<%= .UserProps.Package | PackagePath %>")},
		"spring/nested/file.txt": {Data: []byte("<%= .UserProps.Name | ToUpper %>")},
		"notes.txt":              {Data: []byte("ignored")},
	}
	loader := NewLoader(fsys)

	flavors, err := loader.Flavors()
	require.NoError(t, err)
	assert.Equal(t, []string{"spring"}, flavors)

	files, err := loader.List("spring")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/file.txt", "pom.xml"}, files)

	out, err := loader.LoadAndRender("spring/pom.xml", NewData(mockConfig()))
	require.NoError(t, err)
	assert.Equal(t, "com/generator/mock", string(out))

	out, err = loader.LoadAndRender("spring/nested/file.txt", NewData(mockConfig()))
	require.NoError(t, err)
	assert.Equal(t, "MYAPPMOCK", string(out))

	_, err = loader.List("java")
	testingx.AssertError(t, err, errors.CodeNotFound)
}
