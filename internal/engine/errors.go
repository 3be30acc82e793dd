package engine

import "fmt"

// Issue codes raised by the scanner. The root package re-exports them.
const (
	CodeUnmatchedBracket = "unmatched_bracket"
	CodeUnterminatedText = "unterminated_text"
	CodeSyntax           = "syntax_error"
	CodeTooDeep          = "too_deep"
	CodeTruncated        = "truncated"
)

// SimpleIssue is a minimal issue representation used inside the engine.
type SimpleIssue struct {
	Code    string
	Keyword string
	Offset  int
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Message)
}

func issueAt(code string, offset int, format string, args ...any) IssueError {
	return IssueError{SimpleIssue{Code: code, Offset: offset, Message: fmt.Sprintf(format, args...)}}
}
