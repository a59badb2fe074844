package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/agent"
	"task-assistant/internal/chat"
	repo "task-assistant/internal/chat/repository"
	"task-assistant/internal/model"
	"task-assistant/pkg/events"
)

// Send stores the user message, lets the assistant answer it and stores the answer.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.SendOutput{}, chat.ErrMessageRequired
	}
	if utf8.RuneCountInString(text) > chat.MaxMessageLength {
		return chat.SendOutput{}, chat.ErrMessageTooLong
	}

	session, err := uc.openSession(ctx, sc, strings.TrimSpace(input.SessionID))
	if err != nil {
		return chat.SendOutput{}, err
	}

	userMsg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		SessionID: session.ID,
		Text:      text,
		Sender:    model.SenderUser,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Send CreateMessage user: %v", err)
		return chat.SendOutput{}, err
	}

	history, err := uc.history(ctx, session.ID, userMsg.ID)
	if err != nil {
		return chat.SendOutput{}, err
	}

	// Tools act for the Scope carried by ctx.
	reply := uc.respond(model.SetScopeToContext(ctx, sc), history, text)

	agentMsg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		SessionID:      session.ID,
		Text:           reply.Text,
		Sender:         model.SenderAgent,
		IntentDetected: reply.Intent,
		ToolExecuted:   reply.ToolExecuted,
		ToolResult:     uc.encodeResult(ctx, reply.ToolResult),
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Send CreateMessage agent: %v", err)
		return chat.SendOutput{}, err
	}

	if err := uc.repo.TouchSession(ctx, session.ID, uc.now()); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Send TouchSession: %v", err)
	}

	if err := uc.publisher.Publish(ctx, events.Event{
		Type:       events.ChatMessage,
		UserID:     sc.UserID,
		SessionID:  session.ID,
		Tool:       reply.ToolExecuted,
		OccurredAt: uc.now().UTC(),
	}); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Send Publish: %v", err)
	}

	return chat.SendOutput{
		SessionID:    session.ID,
		Reply:        reply.Text,
		UserMessage:  userMsg,
		AgentMessage: agentMsg,
		ToolExecuted: reply.ToolExecuted,
		TasksChanged: reply.TasksChanged,
	}, nil
}

func (uc *implUseCase) openSession(ctx context.Context, sc model.Scope, id string) (model.ChatSession, error) {
	if id == "" {
		s, err := uc.repo.CreateSession(ctx, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.openSession CreateSession: %v", err)
			return model.ChatSession{}, err
		}
		return s, nil
	}
	return uc.getOwnedSession(ctx, sc, id, "openSession")
}

// history returns up to HistoryLimit messages before the one just stored.
func (uc *implUseCase) history(ctx context.Context, sessionID, currentID string) ([]model.ChatMessage, error) {
	msgs, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{SessionID: sessionID, Limit: chat.HistoryLimit + 1})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.history ListMessages: %v", err)
		return nil, err
	}
	if n := len(msgs); n > 0 && msgs[n-1].ID == currentID {
		msgs = msgs[:n-1]
	}
	if len(msgs) > chat.HistoryLimit {
		msgs = msgs[len(msgs)-chat.HistoryLimit:]
	}
	return msgs, nil
}

// respond asks the primary responder first and falls back so the user always gets an answer.
func (uc *implUseCase) respond(ctx context.Context, history []model.ChatMessage, text string) agent.Reply {
	if uc.primary != nil {
		reply, err := uc.primary.Respond(ctx, history, text)
		if err == nil {
			return reply
		}
		if reply.ToolResult != nil {
			// Never replay a tool call through the fallback.
			uc.l.Warnf(ctx, "chat.usecase.respond primary failed after %s: %v", reply.ToolExecuted, err)
			reply.Text = agent.FormatResult(*reply.ToolResult)
			return reply
		}
		uc.l.Warnf(ctx, "chat.usecase.respond primary failed, using fallback: %v", err)
	}

	reply, err := uc.fallback.Respond(ctx, history, text)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.respond fallback: %v", err)
		return agent.Reply{Text: "Sorry, I couldn't process that right now. Please try again.", Intent: "error"}
	}
	return reply
}

func (uc *implUseCase) encodeResult(ctx context.Context, res *agent.Result) json.RawMessage {
	if res == nil {
		return nil
	}
	b, err := json.Marshal(res)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.encodeResult: %v", err)
		return nil
	}
	return b
}
