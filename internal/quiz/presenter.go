package quiz

// Presenter is the session's boundary with whatever front-end renders the
// quiz. The controller calls it synchronously; implementations hold only
// transient rendering state and must clear any prior selection indicator
// when RenderQuestion is called.
type Presenter interface {
	RenderQuestion(text string, options []string)
	NotifyNoSelection()
	NotifyResult(score, total int)
}
