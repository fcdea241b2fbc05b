package checkout

// RedirectResult is the outcome of issuing an invoice for an order. Either
// Redirect is set and the shopper should be sent there, or Message carries
// a user-facing checkout failure. Fatal errors are returned separately.
type RedirectResult struct {
	Redirect string
	Message  string
}

func (r *RedirectResult) OK() bool {
	return r != nil && r.Redirect != ""
}

func Redirect(url string) *RedirectResult {
	return &RedirectResult{Redirect: url}
}

func SoftFailure(msg string) *RedirectResult {
	return &RedirectResult{Message: msg}
}
