package solver

import "fmt"

const promptTemplate = `Solve this academic problem in exactly 500 words or less in markdown format:

Question: %s
Student's Doubt: %s

Provide:
1. Complete step-by-step solution
2. All relevant formulas
3. Key concepts explained
4. Final answer

Format in clean markdown. Be concise but comprehensive.`

// BuildPrompt renders the fixed tutoring instructions around a question and doubt.
func BuildPrompt(question, doubt string) string {
	return fmt.Sprintf(promptTemplate, question, doubt)
}
