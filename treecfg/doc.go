// Package treecfg serves configuration documents as navigable bound paths.
//
// The package uses an interface-based design with two extension points:
//   - Parser: deserializes raw data into a generic mapping/sequence tree
//   - Fetcher: retrieves raw configuration data (file, env, etc.)
//
// Provider wires the two together and binds a lookup accessor over the
// resulting tree, so callers navigate configuration with stig paths
// instead of unmarshaling into fixed structs:
//
//	provider := treecfg.Provider()
//	root, err := provider(treecfg.NewYAMLParser(), fetcher)
//	timeout, ok := root.Join(stig.Key("api"), stig.Key("timeout")).Value()
//
// NewModule exposes the same wiring as a named Fx module supplying a
// *stig.BoundPath to the DI container.
package treecfg
