package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"

	"mediadiff/internal/faults"
	"mediadiff/internal/logging"
)

// Walk returns every candidate file under root, sorted lexically.
//
// fastwalk invokes the callback from several goroutines, so candidates are
// collected under a mutex and ordered once the walk completes.
func Walk(ctx context.Context, root string, filter Filter, logger *slog.Logger) ([]string, error) {
	logger = logging.NewComponentLogger(logger, "walker")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, faults.Wrap(faults.ErrRootNotFound, "discovery", "stat root", root, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrRootNotFound, "discovery", "stat root", fmt.Sprintf("%s is not a directory", root), nil)
	}

	var (
		mu         sync.Mutex
		candidates []string
	)

	conf := &fastwalk.Config{Follow: false}
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			entryErr := faults.Wrap(faults.ErrTraversal, "discovery", "read entry", "", err)
			if !faults.Recoverable(entryErr) {
				return entryErr
			}
			logging.WarnWithContext(logger, "permission error", "walk_entry_failed",
				logging.String(logging.FieldPath, fmt.Sprintf("%q", path)),
				logging.Error(entryErr),
				logging.String(logging.FieldErrorHint, "entry excluded from report"),
			)
			return nil
		}
		ok, filterErr := filter.ShouldInspect(path, d)
		if filterErr != nil {
			if !faults.Recoverable(filterErr) {
				return filterErr
			}
			logging.WarnWithContext(logger, "skipping file with non-text name", "walk_entry_skipped",
				logging.String(logging.FieldPath, fmt.Sprintf("%q", path)),
				logging.Error(filterErr),
			)
			return nil
		}
		if !ok {
			return nil
		}
		mu.Lock()
		candidates = append(candidates, path)
		mu.Unlock()
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, faults.Wrap(faults.ErrTraversal, "discovery", "walk", root, walkErr)
	}

	sort.Strings(candidates)
	return candidates, nil
}
