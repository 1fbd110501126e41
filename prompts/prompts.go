package prompts

// Default generation prompts, one per content kind. Each is a text/template
// rendered with Params, and each instructs the generation service to answer
// with exactly the payload JSON the ingest schemas accept.
const (
	// StudyNotesPrompt asks for structured study notes on a topic.
	StudyNotesPrompt = `<instructions>
You are an expert tutor. Write clear, well-structured study notes for a student.
</instructions>

<task>
Create study notes on "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
Write for grade level {{.GradeLevel}}.
{{- end}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}.
{{- end}}
{{- if .Curriculum}}
Follow the {{.Curriculum}} curriculum.
{{- end}}
</task>

<rules>
- Structure the notes with headings, short paragraphs and bullet points.
- Cover the key concepts and definitions, with a worked example where one helps.
- Keep the language appropriate for the stated grade level.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "notes",
  "topic": "{{.Topic}}",
  "content": "the full notes as Markdown"
}
</output_format>`

	// QuizPrompt asks for a practice quiz with an answer key.
	QuizPrompt = `<instructions>
You are an expert teacher writing a practice quiz.
</instructions>

<task>
Write a quiz of {{.Count}} questions on "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
Target grade level {{.GradeLevel}}.
{{- end}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}.
{{- end}}
{{- if .Curriculum}}
Follow the {{.Curriculum}} curriculum.
{{- end}}
</task>

<rules>
- Mix multiple-choice and short-answer questions.
- Number every question; list the four options for multiple choice as A-D.
- Put a complete answer key at the end, after a "## Answers" heading.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "quiz",
  "topic": "{{.Topic}}",
  "content": "the quiz as Markdown, answer key included"
}
</output_format>`

	// FlashcardsPrompt asks for a deck of question/answer cards.
	FlashcardsPrompt = `<instructions>
You are an expert tutor creating flashcards for spaced-repetition review.
</instructions>

<task>
Create {{.Count}} flashcards on "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
Target grade level {{.GradeLevel}}.
{{- end}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}.
{{- end}}
</task>

<rules>
- Each front is one focused question, term or cloze; never two facts on one card.
- Each back is the shortest complete answer, one or two sentences.
- Cards must stand alone: no "see above", no references to other cards.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "flashcards",
  "topic": "{{.Topic}}",
  "cards": [
    { "front": "question or term", "back": "answer or definition" }
  ]
}
</output_format>`

	// HomeworkFeedbackPrompt asks for constructive feedback on submitted work.
	HomeworkFeedbackPrompt = `<instructions>
You are a supportive teacher reviewing a student's homework. The student's
submission accompanies this request.
</instructions>

<task>
Give feedback on the submitted homework for "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
The student is at grade level {{.GradeLevel}}.
{{- end}}
</task>

<rules>
- Start with what the student did well.
- Point out concrete mistakes and how to fix them; quote the relevant part.
- End with two or three specific things to practice next.
- Be encouraging; grade-appropriate language only.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "feedback",
  "topic": "{{.Topic}}",
  "content": "the feedback as Markdown"
}
</output_format>`

	// PodcastScriptPrompt asks for a two-host educational audio script.
	PodcastScriptPrompt = `<instructions>
You are writing the script for a short educational podcast with two hosts,
Alex and Sam.
</instructions>

<task>
Write a podcast episode explaining "{{.Topic}}"{{if .Subject}} from {{.Subject}}{{end}}.
{{- if .GradeLevel}}
The audience is grade level {{.GradeLevel}}.
{{- end}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}.
{{- end}}
</task>

<rules>
- Conversational tone: the hosts ask each other questions and use analogies.
- Five to eight minutes of speech; no sound-effect directions.
- Mark speakers as "ALEX:" and "SAM:" on their own lines.
- Close with a one-minute recap of the key points.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it.
If you synthesize audio, put the base64 WAV in "audioData"; otherwise omit it.

{
  "kind": "podcast",
  "topic": "{{.Topic}}",
  "content": "the full script",
  "audioData": "optional base64 audio"
}
</output_format>`

	// CheatSheetPrompt asks for a dense one-page reference.
	CheatSheetPrompt = `<instructions>
You are an expert tutor condensing a topic into a one-page cheat sheet.
</instructions>

<task>
Create a cheat sheet for "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
Target grade level {{.GradeLevel}}.
{{- end}}
{{- if .Curriculum}}
Follow the {{.Curriculum}} curriculum.
{{- end}}
</task>

<rules>
- Fit on one page: formulas, definitions and rules only, no prose paragraphs.
- Group related items under short headings; use tables where they compress.
- Include the classic mistakes to avoid as a final short list.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "cheatsheet",
  "topic": "{{.Topic}}",
  "content": "the cheat sheet as Markdown"
}
</output_format>`

	// LearningPathPrompt asks for an ordered study roadmap.
	LearningPathPrompt = `<instructions>
You are an expert tutor planning a study roadmap for a student.
</instructions>

<task>
Plan a learning path for "{{.Topic}}"{{if .Subject}} in {{.Subject}}{{end}}.
{{- if .GradeLevel}}
The student is at grade level {{.GradeLevel}}.
{{- end}}
{{- if .Count}}
Aim for about {{.Count}} steps.
{{- end}}
{{- if .Curriculum}}
Follow the {{.Curriculum}} curriculum.
{{- end}}
</task>

<rules>
- Order the steps from prerequisites to the goal; each builds on the last.
- One concrete milestone per step, phrased as something the student does.
- Keep descriptions to one or two sentences.
</rules>

<output_format>
Return ONLY a single valid JSON object, with no text before or after it:

{
  "kind": "path",
  "topic": "{{.Topic}}",
  "goal": "what the student can do when the path is finished",
  "steps": [
    {"title": "short milestone name", "description": "what to do and why"}
  ]
}
</output_format>`
)
