package assistant

// Topic templates for generic "write/save/remember" phrasing. The topic is
// inferred from a fixed keyword lookup; unknown topics fall back to the
// generic skeleton.

// topicTemplate is a markdown skeleton with suggested tags.
type topicTemplate struct {
	Name     string
	Keywords []string
	Body     string
	Tags     []string
}

// topicTemplates is checked in order; the first keyword hit wins.
var topicTemplates = []topicTemplate{
	{
		Name:     "recipe",
		Keywords: []string{"recipe", "cook", "dish"},
		Body:     "# Recipe: \n\n## Ingredients\n- \n\n## Steps\n1. \n\n## Notes\n",
		Tags:     []string{"recipe", "cooking"},
	},
	{
		Name:     "story",
		Keywords: []string{"story"},
		Body:     "# Story Draft\n\n## Characters\n- \n\n## Setting\n\n## Plot\n",
		Tags:     []string{"story", "writing"},
	},
	{
		Name:     "idea",
		Keywords: []string{"idea"},
		Body:     "# New Idea\n\n## Summary\n\n## Why it matters\n\n## Next steps\n- ",
		Tags:     []string{"idea", "brainstorm"},
	},
	{
		Name:     "meeting",
		Keywords: []string{"meeting"},
		Body:     "# Meeting Notes\n\n**Date:** \n**Attendees:** \n\n## Agenda\n- \n\n## Action Items\n- [ ] ",
		Tags:     []string{"meeting", "work"},
	},
	{
		Name:     "todo",
		Keywords: []string{"todo", "to-do", "checklist"},
		Body:     "# To-Do List\n\n- [ ] \n- [ ] \n- [ ] ",
		Tags:     []string{"todo", "tasks"},
	},
	{
		Name:     "journal",
		Keywords: []string{"journal", "diary"},
		Body:     "# Journal Entry\n\n**Date:** \n\n## Today\n\n## Thoughts\n",
		Tags:     []string{"journal", "personal"},
	},
}

// genericTemplate is used when no topic keyword matches.
var genericTemplate = topicTemplate{
	Name: "note",
	Body: "# Note\n\n",
	Tags: []string{"note"},
}

// inferTopic picks the template for a lower-cased input.
func inferTopic(q string) topicTemplate {
	for _, t := range topicTemplates {
		for _, kw := range t.Keywords {
			if containsLower(q, kw) {
				return t
			}
		}
	}
	return genericTemplate
}
