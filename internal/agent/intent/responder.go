package intent

import (
	"context"

	"task-assistant/internal/agent"
	"task-assistant/internal/model"
	pkgLog "task-assistant/pkg/log"
)

// Responder answers messages with the Parser and the tool Executor.
type Responder struct {
	parser *Parser
	exec   *agent.Executor
	l      pkgLog.Logger
}

var _ agent.Responder = (*Responder)(nil)

func NewResponder(exec *agent.Executor, l pkgLog.Logger) *Responder {
	return &Responder{parser: NewParser(), exec: exec, l: l}
}

// Respond ignores history; every message is classified on its own.
func (r *Responder) Respond(ctx context.Context, _ []model.ChatMessage, message string) (agent.Reply, error) {
	out := r.parser.Parse(message)
	r.l.Debugf(ctx, "agent.intent.Respond: classified as %s", out.Intent)

	tool := out.Intent.Tool()
	if tool == "" {
		return agent.Reply{Text: out.Reply, Intent: string(out.Intent)}, nil
	}

	res := r.exec.Execute(ctx, tool, out.Params)
	return agent.Reply{
		Text:         agent.FormatResult(res),
		Intent:       string(out.Intent),
		ToolExecuted: tool,
		ToolResult:   &res,
		TasksChanged: res.OK() && agent.IsMutating(tool),
	}, nil
}
