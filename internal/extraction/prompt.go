package extraction

import "fmt"

// Prompts ask for strict JSON so the response can be decoded with the
// balanced-span extractor even when the model wraps it in prose.

const taskSchema = `{
  "task": "Clear, concise, actionable task description (max 50 words)",
  "priority": "high|medium|low",
  "estimatedDuration": number in minutes,
  "deadline": "inferred deadline or null",
  "project": "inferred project/category name",
  "tags": ["tag1", "tag2"]
}`

func textPrompt(title, url, text string) string {
	return fmt.Sprintf(`Analyze the following text and extract a clear, actionable task.

Context:
- Page: %s
- URL: %s

Text to analyze:
"%s"

Extract the following in JSON format:
%s

Requirements:
- Task description should be concise and focused on the key action
- Remove unnecessary context and verbose language
- Make it scannable and actionable
- If it's an email or long text, extract the core task/action item
- Be specific about what needs to be done`, title, url, text, taskSchema)
}

func transcriptQuickPrompt(transcript string) string {
	return fmt.Sprintf(`Extract a clear, actionable task from this speech transcript:

"%s"

Return ONLY a JSON object with this exact format (no other text):
%s

Requirements:
- Task description should be focused on the key action
- Remove unnecessary context and verbose language
- Make it scannable and actionable
- Be specific about what needs to be done`, transcript, taskSchema)
}

func transcriptMeetingPrompt(transcript string) string {
	return fmt.Sprintf(`Extract all actionable tasks from this meeting transcript:

"%s"

Return ONLY a JSON array with this exact format (no other text):
[
%s
]

Requirements:
- Extract ALL distinct tasks mentioned
- Make each task clear and actionable
- Infer priority based on urgency/importance in the conversation
- Estimate realistic durations
- Identify any mentioned deadlines`, transcript, taskSchema)
}

func audioQuickPrompt() string {
	return fmt.Sprintf(`Listen to this audio recording and extract a clear, actionable task from it.

Extract the following in JSON format:
%s

Requirements:
- Task description should be concise and focused on the key action
- Remove unnecessary context and verbose language
- Make it scannable and actionable
- Be specific about what needs to be done`, taskSchema)
}

func audioMeetingPrompt() string {
	return `Listen to this meeting audio recording and extract all action items and tasks.

Extract multiple tasks in JSON array format:
[
  {
    "task": "Clear, actionable task description (max 50 words)",
    "priority": "high|medium|low",
    "estimatedDuration": number in minutes,
    "assignee": "person name if mentioned, or null",
    "deadline": "inferred deadline or null",
    "project": "inferred project or category name",
    "tags": ["tag1", "tag2"]
  }
]

Requirements:
- Extract ALL actionable items from the meeting
- Be specific about what needs to be done
- Include context about who should do it if mentioned
- Each task should be independent and actionable
- Priority based on language cues (urgent, important, ASAP = high)
- Estimate duration based on task complexity`
}

func screenshotPrompt(title, url string) string {
	return fmt.Sprintf(`Analyze this screenshot and extract any visible tasks, action items, or important information.

Context:
- Page: %s
- URL: %s

Please extract the following in JSON format:
%s

Look for:
- Task descriptions, action items, or to-dos
- Important text, headings, or highlighted content
- Due dates or deadlines
- Project or category names
- Priority indicators

If the screenshot shows a task list, email, or project management tool, extract the most prominent task.
If it's general content, summarize the key action item or information.`, title, url, taskSchema)
}
