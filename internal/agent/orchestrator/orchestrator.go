package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-assistant/internal/agent"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
)

var ErrEmptyResponse = errors.New("empty LLM response")

// Respond runs the ReAct loop: reason, act, observe, for at most MaxAgentSteps model calls.
func (o *Orchestrator) Respond(ctx context.Context, history []model.ChatMessage, message string) (agent.Reply, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: SystemPromptAgent + "\n" + buildTimeContext(o.now(), o.location)}},
		},
		Messages: toMessages(history),
		Tools:    o.exec.Registry().ToFunctionDefinitions(),
	}
	req.Messages = append(req.Messages, llmprovider.Message{
		Role:  llmprovider.RoleUser,
		Parts: []llmprovider.Part{{Text: message}},
	})

	var reply agent.Reply
	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Debugf(ctx, "agent.orchestrator.Respond: step %d/%d", step+1, MaxAgentSteps)

		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			if reply.ToolResult == nil {
				return agent.Reply{}, fmt.Errorf("agent LLM error at step %d: %w", step+1, err)
			}
			// A tool already ran: answer with its result instead of failing.
			o.l.Warnf(ctx, "agent.orchestrator.Respond: LLM error at step %d after %s: %v", step+1, reply.ToolExecuted, err)
			return o.finish(ctx, reply, "", step)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			return o.finish(ctx, reply, strings.TrimSpace(resp.Text()), step)
		}

		callParts := make([]llmprovider.Part, 0, len(calls))
		resultParts := make([]llmprovider.Part, 0, len(calls))
		for i := range calls {
			call := calls[i]
			o.l.Infof(ctx, "agent.orchestrator.Respond: calling tool %s", call.Name)

			res := o.exec.Execute(ctx, call.Name, call.Args)
			reply.ToolExecuted = call.Name
			reply.ToolResult = &res
			if res.OK() && agent.IsMutating(call.Name) {
				reply.TasksChanged = true
			}

			callParts = append(callParts, llmprovider.Part{FunctionCall: &call})
			resultParts = append(resultParts, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{Name: call.Name, Response: res},
			})
		}

		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: callParts},
			llmprovider.Message{Role: llmprovider.RoleFunction, Parts: resultParts},
		)
	}

	o.l.Warnf(ctx, "agent.orchestrator.Respond: exceeded max steps (%d)", MaxAgentSteps)
	reply.Text = ReplyMaxStepsExceeded
	reply.Intent = intentOf(reply)
	return reply, nil
}

// finish completes reply with the model's final text. When the model ran a tool
// but said nothing, the tool result is rendered instead.
func (o *Orchestrator) finish(ctx context.Context, reply agent.Reply, text string, step int) (agent.Reply, error) {
	if text == "" {
		if reply.ToolResult == nil {
			return agent.Reply{}, ErrEmptyResponse
		}
		text = agent.FormatResult(*reply.ToolResult)
	}
	o.l.Infof(ctx, "agent.orchestrator.Respond: finished at step %d", step+1)

	reply.Text = text
	reply.Intent = intentOf(reply)
	return reply, nil
}

func intentOf(r agent.Reply) string {
	if r.ToolExecuted != "" {
		return r.ToolExecuted
	}
	return IntentConversation
}

func toMessages(history []model.ChatMessage) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := llmprovider.RoleUser
		if m.Sender == model.SenderAgent {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: m.Text}},
		})
	}
	return msgs
}
