// Package intent maps plain-language task requests onto tool calls without an LLM.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	reSpaces = regexp.MustCompile(`\s+`)

	reGreeting = regexp.MustCompile(`(?i)^(?:hi|hello|hey|hiya|good (?:morning|afternoon|evening))(?:\s+there)?$`)
	reHelp     = regexp.MustCompile(`(?i)^(?:help|commands|what can you do|how does this work)$`)

	reList      = regexp.MustCompile(`(?i)^(?:(?:show|list|display|view|see|give)(?:\s+me)?|what(?:'s|’s| is| are))\b(.*)$`)
	reListNoun  = regexp.MustCompile(`(?i)\b(?:tasks?|todos?|to-dos?|list)\b`)
	rePending   = regexp.MustCompile(`(?i)\b(?:pending|open|incomplete|unfinished|remaining|outstanding)\b`)
	reCompleted = regexp.MustCompile(`(?i)\b(?:completed|complete|done|finished)\b`)

	reUpdateDesc = regexp.MustCompile(`(?i)^(?:update|change|set|edit)\s+(?:the\s+)?description\s+(?:of|for)\s+(.+?)\s+to\s+(.+)$`)
	reRename     = regexp.MustCompile(`(?i)^(?:rename|change|update|edit)\s+(.+?)\s+to\s+(.+)$`)
	reMarkDone   = regexp.MustCompile(`(?i)^mark\s+(.+?)\s+as\s+(?:done|complete|completed|finished)$`)
	reComplete   = regexp.MustCompile(`(?i)^(?:complete|finish|check off|tick off|close)\s+(.+)$`)
	reDelete     = regexp.MustCompile(`(?i)^(?:delete|remove|drop|cancel|get rid of)\s+(.+)$`)
	reAdd        = regexp.MustCompile(`(?i)^(?:add|create|new|remember to|remind me to)\b\s*(.*)$`)

	reAddPrefix  = regexp.MustCompile(`(?i)^(?:a\s+)?(?:new\s+)?task\b\s*(?::|called\b|named\b|to\b)?\s*`)
	reAddDesc    = regexp.MustCompile(`(?i)^(.+?)(?:\s+-\s+|\s+with description\s+|:\s+)(.+)$`)
	reRefIndex   = regexp.MustCompile(`(?i)^(?:task\s*)?(?:#|number\s+|no\.?\s*)?(\d+)$`)
	reRefQuoted  = regexp.MustCompile(`^["'“‘](.+)["'”’]$`)
	reRefTrim    = regexp.MustCompile(`(?i)^(?:the\s+|my\s+)`)
	reRefSuffix  = regexp.MustCompile(`(?i)\s+(?:task|item|title|name)$`)
	reRefPrefix  = regexp.MustCompile(`(?i)^task\s+`)
	reTrailPunct = regexp.MustCompile(`[.!]+$`)
)

// Parser is a deterministic intent classifier. It has no state and is safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse classifies message. It never fails: anything unrecognised is IntentUnknown.
func (p *Parser) Parse(message string) Output {
	text := normalize(message)
	if text == "" {
		return Output{Intent: IntentUnknown, Reply: ReplyUnknown}
	}

	switch {
	case reGreeting.MatchString(text):
		return Output{Intent: IntentGreeting, Reply: ReplyGreeting}
	case reHelp.MatchString(text):
		return Output{Intent: IntentHelp, Reply: ReplyHelp}
	}

	if m := reUpdateDesc.FindStringSubmatch(text); m != nil {
		params := parseRef(m[1])
		params["new_description"] = unquote(m[2])
		return Output{Intent: IntentUpdateTask, Params: params}
	}
	if m := reRename.FindStringSubmatch(text); m != nil {
		params := parseRef(m[1])
		params["new_title"] = unquote(m[2])
		return Output{Intent: IntentUpdateTask, Params: params}
	}
	if m := reMarkDone.FindStringSubmatch(text); m != nil {
		return Output{Intent: IntentCompleteTask, Params: parseRef(m[1])}
	}
	if m := reComplete.FindStringSubmatch(text); m != nil {
		return Output{Intent: IntentCompleteTask, Params: parseRef(m[1])}
	}
	if m := reDelete.FindStringSubmatch(text); m != nil {
		return Output{Intent: IntentDeleteTask, Params: parseRef(m[1])}
	}
	if m := reList.FindStringSubmatch(text); m != nil && reListNoun.MatchString(m[1]) {
		return Output{Intent: IntentListTasks, Params: map[string]interface{}{"status": listStatus(m[1])}}
	}
	if m := reAdd.FindStringSubmatch(text); m != nil {
		return Output{Intent: IntentAddTask, Params: parseAdd(m[1])}
	}

	return Output{Intent: IntentUnknown, Reply: ReplyUnknown}
}

func normalize(s string) string {
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	s = strings.TrimSuffix(s, "?")
	s = reTrailPunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func listStatus(rest string) string {
	switch {
	case rePending.MatchString(rest):
		return "pending"
	case reCompleted.MatchString(rest):
		return "completed"
	default:
		return "all"
	}
}

func parseAdd(rest string) map[string]interface{} {
	rest = strings.TrimSpace(reAddPrefix.ReplaceAllString(rest, ""))
	params := map[string]interface{}{}
	if m := reAddDesc.FindStringSubmatch(rest); m != nil {
		params["title"] = unquote(m[1])
		params["description"] = unquote(m[2])
		return params
	}
	params["title"] = unquote(rest)
	return params
}

// parseRef turns "task 2", "#2", "the second task", "'milk'" or a task id
// into task_index, task_identifier or task_id.
func parseRef(ref string) map[string]interface{} {
	ref = strings.TrimSpace(ref)
	if m := reRefQuoted.FindStringSubmatch(ref); m != nil {
		return map[string]interface{}{"task_identifier": strings.TrimSpace(m[1])}
	}

	ref = reRefTrim.ReplaceAllString(ref, "")
	if _, err := uuid.Parse(ref); err == nil {
		return map[string]interface{}{"task_id": ref}
	}
	if m := reRefIndex.FindStringSubmatch(ref); m != nil {
		n, _ := strconv.Atoi(m[1])
		return map[string]interface{}{"task_index": n}
	}

	ref = reRefSuffix.ReplaceAllString(ref, "")
	if n, ok := ordinals[strings.ToLower(ref)]; ok {
		return map[string]interface{}{"task_index": n}
	}
	if m := reRefIndex.FindStringSubmatch(ref); m != nil {
		n, _ := strconv.Atoi(m[1])
		return map[string]interface{}{"task_index": n}
	}

	ref = reRefPrefix.ReplaceAllString(ref, "")
	return map[string]interface{}{"task_identifier": unquote(ref)}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if m := reRefQuoted.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
