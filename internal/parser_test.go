package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *Component {
	t.Helper()
	root, err := Parse(source, DefaultDelimiters(), nil)
	require.NoError(t, err)
	return root
}

func TestParse_PlainText(t *testing.T) {
	root := mustParse(t, "hello world")
	require.Len(t, root.Children, 1)
	assert.True(t, root.Children[0].IsText())
	assert.Equal(t, "hello world", root.Children[0].Text)
}

func TestParse_Variable(t *testing.T) {
	root := mustParse(t, "a{{name}}b")
	require.Len(t, root.Children, 3)
	assert.Equal(t, "a", root.Children[0].Text)
	assert.Equal(t, KindVariable, root.Children[1].Tag.Kind)
	assert.Equal(t, "name", root.Children[1].Tag.Name)
	assert.Equal(t, "b", root.Children[2].Text)
}

func TestParse_UnescapedVariable(t *testing.T) {
	root := mustParse(t, "{{{name}}}")
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindUnescapedVariable, root.Children[0].Tag.Kind)
	assert.Equal(t, "name", root.Children[0].Tag.Name)

	root2 := mustParse(t, "{{&name}}")
	require.Len(t, root2.Children, 1)
	assert.Equal(t, KindUnescapedVariable, root2.Children[0].Tag.Kind)
	assert.Equal(t, "name", root2.Children[0].Tag.Name)
}

func TestParse_Comment(t *testing.T) {
	root := mustParse(t, "{{! this is ignored }}")
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindComment, root.Children[0].Tag.Kind)
}

func TestParse_Section(t *testing.T) {
	root := mustParse(t, "{{#xs}}body{{/xs}}")
	require.Len(t, root.Children, 1)
	sec := root.Children[0]
	assert.Equal(t, KindSectionBegin, sec.Tag.Kind)
	assert.Equal(t, "xs", sec.Tag.Name)
	assert.Equal(t, "body", sec.Tag.SectionText)
	require.Len(t, sec.Children, 1)
	assert.Equal(t, "body", sec.Children[0].Text)
}

func TestParse_InvertedSection(t *testing.T) {
	root := mustParse(t, "{{^xs}}nope{{/xs}}")
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindSectionBeginInverted, root.Children[0].Tag.Kind)
}

func TestParse_Partial(t *testing.T) {
	root := mustParse(t, "{{>footer}}")
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindPartial, root.Children[0].Tag.Kind)
	assert.Equal(t, "footer", root.Children[0].Tag.Name)
}

func TestParse_SetDelimiter(t *testing.T) {
	root := mustParse(t, "{{=<% %>=}}<%x%>")
	require.Len(t, root.Children, 2)
	assert.Equal(t, KindSetDelimiter, root.Children[0].Tag.Kind)
	tag := root.Children[1]
	assert.Equal(t, KindVariable, tag.Tag.Kind)
	assert.Equal(t, "x", tag.Tag.Name)
}

func TestParse_UnclosedTag(t *testing.T) {
	_, err := Parse("abc{{unterminated", DefaultDelimiters(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unclosed tag at 3")
}

func TestParse_UnclosedSection(t *testing.T) {
	_, err := Parse("{{#a}}x", DefaultDelimiters(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Unclosed section "a"`)
}

func TestParse_UnopenedSection(t *testing.T) {
	_, err := Parse("{{/a}}", DefaultDelimiters(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Unopened section "a"`)
}

func TestParse_MismatchedSectionName(t *testing.T) {
	_, err := Parse("{{#a}}x{{/b}}", DefaultDelimiters(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Unclosed section "a"`)
}

func TestParse_InvalidSetDelimiter(t *testing.T) {
	cases := []string{
		"{{=x=}}",       // too short after stripping
		"{{=<% %>}}",    // missing trailing '='
		"{{=<%%>=}}",    // no interior whitespace
		"{{=a=a b=}}",   // begin side contains a forbidden '='
	}
	for _, src := range cases {
		_, err := Parse(src, DefaultDelimiters(), nil)
		require.Error(t, err, src)
		assert.Contains(t, err.Error(), "Invalid set delimiter tag", src)
	}
}

func TestParse_Idempotent(t *testing.T) {
	source := "{{#xs}}{{n}}{{/xs}} {{x}}"
	r1, err1 := Parse(source, DefaultDelimiters(), nil)
	r2, err2 := Parse(source, DefaultDelimiters(), nil)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1.String(), r2.String())
}

func TestParse_CustomInitialDelimiters(t *testing.T) {
	root, err := Parse("<%x%>", Delimiters{Begin: "<%", End: "%>"}, nil)
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, KindVariable, root.Children[0].Tag.Kind)
	assert.Equal(t, "x", root.Children[0].Tag.Name)
}
