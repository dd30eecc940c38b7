package cleanup

import (
	"context"
)

type Cleaner interface {
	Fetch(ctx context.Context) error
	Delete(ctx context.Context) error
	Print()
}

// CleanupResource fetches and prints r, then deletes it only if confirm approves.
// It reports whether the delete was issued and succeeded.
func CleanupResource(ctx context.Context, r Cleaner, confirm Confirm, prompt string) (bool, error) {
	err := r.Fetch(ctx)
	if err != nil {
		return false, err
	}

	r.Print()
	if confirm == nil || !confirm(prompt) {
		return false, nil
	}

	err = r.Delete(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}
