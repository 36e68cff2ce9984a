package boundary

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// wordScanner couples a UAX#29 word breaker with the segmenter driving
// it. Scanners carry per-call cursor state and are short-lived; to
// avoid re-building the breaker's rule machinery for every sentence we
// pool them.
type wordScanner struct {
	segmenter *segment.Segmenter
}

type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &wordScanner{}
			onWords := uax29.NewWordBreaker(1)
			sc.segmenter = segment.NewSegmenter(onWords)
			return sc, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// borrowScanner fetches a scanner from the pool. Callers must release
// it when the cursor is closed.
func borrowScanner() *wordScanner {
	o, _ := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	return o.(*wordScanner)
}

// releaseIntoPool puts the scanner back into the pool.
func (sc *wordScanner) releaseIntoPool() {
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}
