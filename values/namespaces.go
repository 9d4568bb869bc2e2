package values

// Namespaces maps namespace prefixes to namespace URIs.
type Namespaces map[string]string

// URI returns a namespace URI registered for the prefix.
func (ns Namespaces) URI(prefix string) (string, bool) {
	uri, ok := ns[prefix]
	return uri, ok
}

// Prefix returns a prefix registered for a namespace URI.
// If multiple prefixes map to the same URI, the shortest (then lexically smallest) one wins.
func (ns Namespaces) Prefix(uri string) (string, bool) {
	var (
		best  string
		found bool
	)
	for p, u := range ns {
		if u != uri {
			continue
		}
		if !found || len(p) < len(best) || (len(p) == len(best) && p < best) {
			best, found = p, true
		}
	}
	return best, found
}
