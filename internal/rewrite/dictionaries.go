package rewrite

// Dictionary tables for the rewrite actions. Each table is an ordered list
// of (match, replacement) pairs; rules apply once each, in declaration
// order, non-recursively. Replacement output is never rescanned by the
// rule that produced it.

// grammarPairs maps common misspellings to corrections.
// Matching is word-boundary, case-insensitive; the case of the first
// letter is preserved, the rest follows the correction's own casing.
var grammarPairs = [][2]string{
	{"teh", "the"},
	{"recieve", "receive"},
	{"recieved", "received"},
	{"recieves", "receives"},
	{"seperate", "separate"},
	{"seperately", "separately"},
	{"definately", "definitely"},
	{"occured", "occurred"},
	{"occurence", "occurrence"},
	{"occasionaly", "occasionally"},
	{"untill", "until"},
	{"wich", "which"},
	{"becuase", "because"},
	{"beleive", "believe"},
	{"freind", "friend"},
	{"alot", "a lot"},
	{"wierd", "weird"},
	{"thier", "their"},
	{"truely", "truly"},
	{"realy", "really"},
	{"finaly", "finally"},
	{"basicly", "basically"},
	{"probly", "probably"},
	{"accomodate", "accommodate"},
	{"acheive", "achieve"},
	{"adress", "address"},
	{"calender", "calendar"},
	{"collegue", "colleague"},
	{"comming", "coming"},
	{"commited", "committed"},
	{"completly", "completely"},
	{"concious", "conscious"},
	{"dissapoint", "disappoint"},
	{"embarass", "embarrass"},
	{"enviroment", "environment"},
	{"existance", "existence"},
	{"experiance", "experience"},
	{"gratefull", "grateful"},
	{"happend", "happened"},
	{"immediatly", "immediately"},
	{"independant", "independent"},
	{"knowlege", "knowledge"},
	{"maintainance", "maintenance"},
	{"mesage", "message"},
	{"neccessary", "necessary"},
	{"noticable", "noticeable"},
	{"posession", "possession"},
	{"publically", "publicly"},
	{"recomend", "recommend"},
	{"refered", "referred"},
	{"relevent", "relevant"},
	{"succesful", "successful"},
	{"tommorow", "tomorrow"},
	{"tounge", "tongue"},
}

// professionalPairs maps casual phrasing to formal equivalents, applied with
// the same case-preservation as grammarPairs. Multi-word keys come before
// the single words they contain.
var professionalPairs = [][2]string{
	{"a lot of", "many"},
	{"lots of", "many"},
	{"kind of", "somewhat"},
	{"sort of", "somewhat"},
	{"gonna", "going to"},
	{"wanna", "want to"},
	{"gotta", "have to"},
	{"dunno", "do not know"},
	{"kinda", "somewhat"},
	{"sorta", "somewhat"},
	{"can't", "cannot"},
	{"won't", "will not"},
	{"don't", "do not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"isn't", "is not"},
	{"aren't", "are not"},
	{"wasn't", "was not"},
	{"couldn't", "could not"},
	{"shouldn't", "should not"},
	{"wouldn't", "would not"},
	{"ain't", "is not"},
	{"hey", "hello"},
	{"hi", "hello"},
	{"yeah", "yes"},
	{"yep", "yes"},
	{"nah", "no"},
	{"nope", "no"},
	{"cool", "excellent"},
	{"awesome", "excellent"},
	{"stuff", "items"},
	{"guys", "everyone"},
	{"huge", "substantial"},
	{"big", "significant"},
	{"get", "obtain"},
	{"got", "received"},
	{"need", "require"},
	{"ask", "request"},
	{"tell", "inform"},
	{"show", "demonstrate"},
	{"help", "assist"},
	{"buy", "purchase"},
	{"start", "commence"},
	{"end", "conclude"},
	{"also", "additionally"},
	{"but", "however"},
	{"so", "therefore"},
}

// fillerWords are stripped entirely by the professional action, together
// with any comma or space that follows them.
var fillerWords = []string{"like", "um", "uh", "er", "ah"}

// simplifyPairs maps complex words to simple synonyms. Matching is
// word-boundary, case-insensitive; the replacement text is substituted
// verbatim, without case restoration.
var simplifyPairs = [][2]string{
	{"utilize", "use"},
	{"utilise", "use"},
	{"commence", "begin"},
	{"terminate", "end"},
	{"endeavor", "try"},
	{"facilitate", "help"},
	{"demonstrate", "show"},
	{"approximately", "about"},
	{"sufficient", "enough"},
	{"numerous", "many"},
	{"obtain", "get"},
	{"purchase", "buy"},
	{"require", "need"},
	{"assist", "help"},
	{"additional", "more"},
	{"consequently", "so"},
	{"nevertheless", "but"},
	{"subsequently", "later"},
	{"ascertain", "find out"},
	{"expedite", "speed up"},
	{"prioritize", "rank"},
	{"implement", "do"},
}

// Fixed elaboration sentences for the expand action.
const (
	expandSingleSentence = "To build on this, the idea deserves a closer look, since its implications reach further than a single statement can capture."
	expandMultiSentence  = "Overall, these points tie together into a broader picture that is worth revisiting and refining over time."
)

// Fixed texts for the reformat action.
const (
	reformatHeading    = "# Main Points"
	reformatShortNote  = "*Add more sentences to generate a structured outline.*"
)
