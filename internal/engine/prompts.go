package engine

import (
	"fmt"
	"strings"

	"teaching-server/internal/domain"
)

const educatorSystemPrompt = "You are an expert educator. Answer in the requested language and return only the requested format with no extra commentary."

// levelGuides maps each difficulty level onto its rendering strategy.
var levelGuides = map[domain.DifficultyLevel]string{
	domain.DifficultyBeginner: "Use simple, everyday language with relatable analogies",
	domain.DifficultyExam:     "Cover exam-relevant points with formulas and problem-solving approaches",
	domain.DifficultyDeep:     "Explore theoretical depth with mathematical derivations",
}

func buildAnalyzePrompt(topic, language string, level domain.DifficultyLevel) string {
	return fmt.Sprintf(`Analyze the following topic for teaching:

Topic: %s
Language: %s
Difficulty Level: %s

Provide:
1. Core concepts (list the main ideas)
2. Prerequisites (what students should know first)
3. Key terminology (important terms with simple definitions)
4. Common misconceptions (what students often get wrong)
5. Real-world applications (where this is used)

Respond with a single JSON object with keys "coreConcepts" (array of strings),
"prerequisites" (array of strings), "keyTerms" (array of {"term","definition"}),
"misconceptions" (array of strings) and "applications" (array of strings).
Every array must contain at least one entry.`, topic, language, level)
}

func buildExplainPrompt(topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) string {
	terms := make([]string, 0, len(analysis.KeyTerms))
	for _, kt := range analysis.KeyTerms {
		terms = append(terms, kt.Term)
	}
	return fmt.Sprintf(`Write a teaching explanation of the topic below.

Topic: %s
Language: %s
Difficulty Level: %s (%s)

Ground the explanation in this analysis:
Core concepts: %s
Prerequisites: %s
Key terms: %s

Respond with the explanation text only, no JSON, no headings.`,
		topic, language, level, levelGuides[level],
		strings.Join(analysis.CoreConcepts, "; "),
		strings.Join(analysis.Prerequisites, "; "),
		strings.Join(terms, "; "))
}

func buildExemplifyPrompt(topic string, concepts []string, language string) string {
	return fmt.Sprintf(`Create worked examples for the topic below.

Topic: %s
Language: %s
Concepts to cover: %s

Produce exactly one example of each type, in this order:
1. "everyday" - a simple daily-life example
2. "numerical" - a step-by-step calculation
3. "application" - a real-world technology use

Respond with a JSON array of {"type","content"} objects.`,
		topic, language, strings.Join(concepts, "; "))
}

func buildScriptPrompt(explanation string, examples []domain.Example, language string) string {
	var sb strings.Builder
	for i, ex := range examples {
		fmt.Fprintf(&sb, "%d. (%s) %s\n", i+1, ex.Type, ex.Content)
	}
	return fmt.Sprintf(`Write a scene-by-scene narrated teaching video script in %s.

Explanation to teach:
%s

Examples to cover:
%s
Rules:
- Scene 1 must introduce the topic.
- Later scenes cover the concepts and at least one example each.
- Durations are positive whole seconds.
- Scene numbers start at 1 and increase without gaps.

Respond with a JSON array of scenes, each
{"sceneNumber","duration","visualDescription","narration","onScreenText","characterAction"}
where "onScreenText" is an array of strings.`, language, explanation, sb.String())
}
