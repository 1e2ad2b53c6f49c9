package grader

import (
	"fmt"
	"strings"

	"github.com/pytutor-ai/backend/internal/domain/questionbank"
)

// ============================================================================
// Prompt builders. The JSON schema always comes last so it is the final
// thing the model sees.
// ============================================================================

// buildExtractPrompt asks for every programming problem in the attached PDF.
func buildExtractPrompt() string {
	return `/no_think
Analyze the attached PDF and extract the programming problems.

FORMATTING RULES:
1. Fix broken lines: PDF text often breaks lines in the middle of sentences. Merge them back into coherent paragraphs.
2. The description MUST include the problem statement, the input format, the output format, and the Sample Input and Sample Output. Never skip the samples.
3. Separate the sections of the description with blank lines.

Respond with ONLY a JSON array, no explanation, no markdown:
[{"id": "problem number, e.g. 1 or Q2", "title": "problem title", "description": "full formatted text"}, ...]
If the PDF contains no programming problems, respond with [].`
}

// buildGradePrompt asks for a strict review of a Python submission.
func buildGradePrompt(problem questionbank.Problem, code string) string {
	return fmt.Sprintf(`/no_think
你是一個嚴格的 Python 程式設計助教。

題目資訊:
ID: %s
標題: %s
描述:
%s

學生提交的 Python 程式碼:
%s

請評估學生的程式碼：
1. 邏輯正確性：是否解決了題目要求的問題？(包含 Sample Input 測試)
2. 語法正確性：是否有語法錯誤？
3. 邊界條件：是否考慮了可能的輸入情況？

Respond with ONLY this JSON, no explanation, no markdown:
{"score": 0-100, "isCorrect": true|false, "feedback": "detailed feedback", "suggestedSolution": "a correct reference implementation, recommended when incorrect"}`,
		problem.ID, problem.Title, problem.Description, fenced(code))
}

// fenced wraps code in a python fence that the code itself cannot close.
func fenced(code string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence + "python\n" + strings.TrimRight(code, "\n") + "\n" + fence
}
