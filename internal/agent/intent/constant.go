package intent

const (
	ReplyGreeting = "Hi! I can help you manage your tasks. Try \"add buy milk\" or \"show my tasks\"."

	ReplyHelp = `I can help you manage your tasks. Try:
- add buy milk
- show my pending tasks
- complete task 2
- mark "milk" as done
- rename task 1 to Call mom
- delete task 3`

	ReplyUnknown = "Sorry, I didn't understand that.\n" + ReplyHelp
)

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}
