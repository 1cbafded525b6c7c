// Package behavioral reads a Claude data directory and derives usage
// features from it.
//
// Three sources are read:
//   - history.jsonl, the flat log of submitted prompts
//   - projects/<project>/<session>.jsonl, one transcript per session
//   - usage-data/facets/*.json, optional per-session annotations
//
// Reading is lenient. Malformed lines are counted in ParseStats and
// skipped, missing files and directories are empty sources, and a line
// longer than the scanner limit ends that file only. A file that exists but
// cannot be read fails the extraction.
//
// Example usage:
//
//	ex := behavioral.NewExtractor("/home/me/.claude", nil)
//	ds, err := ex.Extract(ctx)
//	if err != nil {
//	    return err
//	}
//	features := behavioral.Aggregate(ds, behavioral.SystemClock{}, time.Local)
package behavioral
