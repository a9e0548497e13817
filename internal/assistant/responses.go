package assistant

// Canned response texts. These are static tables, independent of state.

const (
	msgNoteGuidance = "Tell me what the note should say, for example: \"add note: pick up the dry cleaning\"."
	msgTaskGuidance = "Tell me what the task is, for example: \"add task: buy milk\"."
	msgSearchGuidance = "Tell me what to search for, for example: \"search notes: project\" or \"search tag work\"."

	msgDeleteGuard = "I don't delete anything myself. Open a note or the trash panel to remove things, where you stay in control."

	msgShortInput = "Could you tell me a bit more? A few words is enough."

	msgNotUnderstood = "I didn't quite get that. You can ask me to \"add note: ...\", \"add task: ...\", " +
		"\"search notes: ...\", or ask things like \"how many notes do I have?\"."

	msgHelp = "Here's what I can do: create notes (\"add note: ...\"), create tasks (\"add task: ...\"), " +
		"search (\"search notes: ...\" or \"search tag work\"), and answer questions about your notes, " +
		"tasks, tags, productivity and word count."
)

// metaResponse pairs a trigger phrase with a fixed reply; checked in order.
type metaResponse struct {
	trigger string
	reply   string
}

var metaResponses = []metaResponse{
	{"what else", "Besides notes and tasks, I can search for you, report your productivity, count your words and tags, and start a note from a template when you ask me to write something."},
	{"how does this work", "Type what you want in plain English. I recognize commands like \"add note: ...\" and \"add task: ...\", and I answer questions about what you've saved."},
	{"how do you work", "I match your words against a fixed set of rules, in order, and the first rule that fits decides what happens. No guesswork, no network."},
	{"can you", "I can create notes and tasks, search your collection, and answer questions about your notes, tasks, tags and productivity. Try \"add note: ...\" to start."},
	{"thank", "You're welcome! Happy to help."},
	{"awesome", "Glad to hear it! Let me know what you'd like to do next."},
	{"great job", "Thanks! Let me know what you'd like to do next."},
	{"good job", "Thanks! Let me know what you'd like to do next."},
	{"well done", "Thanks! Let me know what you'd like to do next."},
}

// Feature pointers for UI capabilities the assistant does not itself run.
var featurePointers = []metaResponse{
	{"pomodoro", "The Pomodoro timer lives in the toolbar: pick a work length and it counts down while you write."},
	{"voice", "Voice input is the microphone button next to the editor; it types what you dictate."},
	{"markdown", "Notes support markdown. Headings, lists and emphasis all render in the preview pane."},
}
