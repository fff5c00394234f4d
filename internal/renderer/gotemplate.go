package renderer

import (
	"bytes"
	"text/template"

	"github.com/promptdepot/promptdepot/internal/errors"
)

// GoTemplateRenderer renders prompts with the text/template syntax
// ({{.name}} placeholders, conditionals, range loops).
type GoTemplateRenderer struct {
	compiled *template.Template
}

// NewGoTemplateRenderer compiles a text/template prompt.
func NewGoTemplateRenderer(tmpl string) (PromptRenderer, error) {
	compiled, err := template.New("prompt").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return nil, errors.ValidationError("parsing template", err)
	}
	return &GoTemplateRenderer{compiled: compiled}, nil
}

// Render implements PromptRenderer.
func (r *GoTemplateRenderer) Render(context map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := r.compiled.Execute(&buf, context); err != nil {
		return "", errors.ValidationError("executing template", err)
	}
	return buf.String(), nil
}

func init() {
	Register("gotemplate", NewGoTemplateRenderer)
}
