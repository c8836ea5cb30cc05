// Package runtime provides the execution context for xgit commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// repository context, object store, resolver, configuration and logger.
package runtime
