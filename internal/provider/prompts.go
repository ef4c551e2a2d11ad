package provider

import "fmt"

// GetTranslateSystemPrompt returns the system prompt for chat-based
// backends (OpenAI, Anthropic).
func GetTranslateSystemPrompt(sourceName, targetName string) string {
	return fmt.Sprintf(`You are a professional translator specializing in indigenous and tribal languages.

<context>
<source_language>%s</source_language>
<target_language>%s</target_language>
</context>

<instructions>
1. Translate from the source language into the language specified in <target_language>
2. Preserve cultural context and traditional meanings
3. Output ONLY the translation, nothing else
4. NO explanations, NO notes, NO markdown formatting
5. NO leading or trailing newlines
</instructions>`, sourceName, targetName)
}

// GetLocalModelPrompt returns the single-prompt form used by the local
// Ollama backend, which takes no separate system message.
func GetLocalModelPrompt(sourceName, targetName, text string) string {
	return fmt.Sprintf(`You are a professional translator specializing in indigenous and tribal languages. Translate the following text from %s to %s. Preserve cultural context and traditional meanings. Provide ONLY the translation, no explanations or additional text.

Source text: %q

Translation:`, sourceName, targetName, text)
}
