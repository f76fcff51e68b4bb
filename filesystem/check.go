package filesystem

import (
	"errors"
	"os"

	billy "github.com/go-git/go-billy/v5"
)

// Missing returns, in order, each of names that is not a regular file in fs.
// Every name is checked; the first absence does not stop the search.
func Missing(fs billy.Filesystem, names []string) (missing []string, err error) {
	for _, name := range names {
		info, err := fs.Stat(name)
		if errors.Is(err, os.ErrNotExist) {
			missing = append(missing, name)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			missing = append(missing, name)
		}
	}
	return
}
