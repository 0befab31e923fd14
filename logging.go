package generator

import "go.uber.org/zap"

// logOptionsResolved records the one real I/O seam in the core: a
// file-backed options directive was resolved against its OptionsDecoder.
// Logged once per node, on the cache-populating visit only.
func (g *Generator) logOptionsResolved(n node, resource string, count int) {
	g.logger.Info("resolved file-backed options",
		zap.String("path", n.path()),
		zap.String("resource", resource),
		zap.Int("count", count),
	)
}

// logCachePopulated records cache population at debug level; the hot
// path of a value already cached never logs.
func (g *Generator) logCachePopulated(kind string, n node) {
	g.logger.Debug("populated node cache",
		zap.String("cache", kind),
		zap.String("path", n.path()),
	)
}
