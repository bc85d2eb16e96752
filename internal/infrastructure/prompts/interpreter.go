package prompts

import (
	"bytes"
	"text/template"

	"action-agent/internal/domain/entity"
)

const interpreterTemplate = `You convert natural language instructions into structured task objects.
Respond with a single JSON object and nothing else, shaped as:
{"action": "<action>", "attrs": {"<name>": "<value>"}}

Known actions:
{{range .Actions -}}
- {{.}}
{{end -}}

If the instruction matches none of the known actions, use action "unknown" and
put a short explanation into attrs.reason. Never invent other actions.`

type interpreterPromptData struct {
	Actions []string
}

// InterpreterPrompt renders the system prompt for the generative interpreter
// from the set of actions the pipeline can execute.
func InterpreterPrompt(actions []entity.Action) (string, error) {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}

	tmpl, err := template.New("interpreter").Parse(interpreterTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, interpreterPromptData{Actions: names}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
