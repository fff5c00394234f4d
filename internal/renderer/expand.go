package renderer

import (
	"fmt"

	"github.com/valyala/fasttemplate"

	"github.com/promptdepot/promptdepot/internal/errors"
)

// ExpandRenderer renders prompts with ${name} placeholder syntax. Placeholders
// absent from the context expand to the empty string.
type ExpandRenderer struct {
	compiled *fasttemplate.Template
}

// NewExpandRenderer compiles a ${name}-style prompt.
func NewExpandRenderer(tmpl string) (PromptRenderer, error) {
	compiled, err := fasttemplate.NewTemplate(tmpl, "${", "}")
	if err != nil {
		return nil, errors.ValidationError("parsing template", err)
	}
	return &ExpandRenderer{compiled: compiled}, nil
}

// Render implements PromptRenderer.
func (r *ExpandRenderer) Render(context map[string]any) (string, error) {
	values := make(map[string]any, len(context))
	for key, value := range context {
		values[key] = fmt.Sprint(value)
	}
	return r.compiled.ExecuteString(values), nil
}

func init() {
	Register("expand", NewExpandRenderer)
}
