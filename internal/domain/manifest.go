package domain

// FileTests holds the test identifiers discovered in a single file
type FileTests struct {
	File  string   `json:"file"`  // Path relative to the scan root, forward slashes
	Tests []string `json:"tests"` // Identifiers in source order
}

// Manifest is the ordered list of files that yielded at least one test
type Manifest []FileTests

// NodeIDs flattens the manifest into "<file>::<test>" identifiers in manifest order.
// This is the key the pytest integration filters and sorts collected items by.
func (m Manifest) NodeIDs() []string {
	ids := make([]string, 0, m.TestCount())
	for _, entry := range m {
		for _, test := range entry.Tests {
			ids = append(ids, entry.File+"::"+test)
		}
	}
	return ids
}

// TestCount returns the total number of test identifiers
func (m Manifest) TestCount() int {
	total := 0
	for _, entry := range m {
		total += len(entry.Tests)
	}
	return total
}
