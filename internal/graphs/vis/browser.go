package vis

import (
	"context"
	"log/slog"
	"sync"

	"github.com/chromedp/cdproto/inspector"
	"github.com/chromedp/chromedp"
)

// openBrowser starts a visible Chrome pointed at url. The returned channel is closed
// when the tab goes away, cancel shuts Chrome down.
func openBrowser(ctx context.Context, url string, logger *slog.Logger) (<-chan struct{}, context.CancelFunc, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("hide-scrollbars", false),
		chromedp.Flag("mute-audio", false),
		chromedp.WindowSize(1280, 960),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	closed := make(chan struct{})
	once := &sync.Once{}
	closeOnce := func() { once.Do(func() { close(closed) }) }

	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		switch ev := ev.(type) {
		case *inspector.EventDetached:
			logger.Debug("browser target detached", "reason", ev.Reason)
			closeOnce()
		case *inspector.EventTargetCrashed:
			logger.Warn("browser target crashed")
			closeOnce()
		}
	})

	if err := chromedp.Run(browserCtx, chromedp.Navigate(url)); err != nil {
		cancel()
		return nil, nil, err
	}

	go func() {
		<-browserCtx.Done()
		closeOnce()
	}()

	return closed, cancel, nil
}
