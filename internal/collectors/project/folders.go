package project

import (
	"os"
	"sort"
)

// listFolders returns the names of the immediate child directories of root,
// sorted lexicographically. No recursion and no name filtering; entry-type
// detection is whatever the platform reports.
func listFolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	folders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}

	sort.Strings(folders)
	return folders, nil
}
