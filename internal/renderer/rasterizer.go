package renderer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// ErrCaptureTooSmall marks a screenshot whose encoded payload is too small
// to be a real certificate. Treated as a silent render failure by the
// orchestrator, never returned to a user as an artifact.
var ErrCaptureTooSmall = errors.New("captured image is implausibly small")

const minCaptureBytes = 2048

// Layout settle time after all image loads resolve. A concession to the
// renderer's asynchronous paint cycle, not a hard guarantee.
const settleDelay = 300 * time.Millisecond

type CaptureOptions struct {
	// Scale is the device scale factor applied to the fixed surface size.
	Scale float64
	// Quality below 100 captures lossy JPEG at that quality; 100 captures
	// lossless PNG.
	Quality int
}

// BulkCapture trades fidelity for bounded encode time and memory when
// producing hundreds of certificates in one batch.
var BulkCapture = CaptureOptions{Scale: 1.5, Quality: 92}

// SingleCapture maximizes print quality for one-off interactive downloads.
var SingleCapture = CaptureOptions{Scale: 3, Quality: 100}

// Rasterizer turns composed HTML surfaces into raster images with a shared
// headless browser. Each capture runs in its own tab, so captures are safe
// to run concurrently.
type Rasterizer struct {
	browserCtx context.Context
	cancel     context.CancelFunc
}

func NewRasterizer() *Rasterizer {
	ctx, cancel := chromedp.NewContext(context.Background())
	return &Rasterizer{browserCtx: ctx, cancel: cancel}
}

func (r *Rasterizer) Close() {
	r.cancel()
}

// imageSettleScript resolves once every <img> element and every CSS
// background-image in the document has loaded, errored, or timed out.
// Background images are probed through a synthetic Image element since they
// expose no load event of their own.
const imageSettleScript = `new Promise((resolve) => {
	const timeout = 10000;
	const waits = [];
	const probeImage = (src) => new Promise((done) => {
		const probe = new Image();
		probe.addEventListener('load', () => done(true));
		probe.addEventListener('error', () => done(true));
		setTimeout(() => done(true), timeout);
		probe.src = src;
	});
	for (const img of document.images) {
		if (img.complete) continue;
		waits.push(new Promise((done) => {
			img.addEventListener('load', () => done(true));
			img.addEventListener('error', () => done(true));
			setTimeout(() => done(true), timeout);
		}));
	}
	for (const el of document.querySelectorAll('*')) {
		const bg = getComputedStyle(el).backgroundImage;
		const match = /url\("?([^")]+)"?\)/.exec(bg);
		if (match && match[1] && !match[1].startsWith('data:')) {
			waits.push(probeImage(match[1]));
		}
	}
	Promise.all(waits).then(() => resolve(true));
})`

// Rasterize renders the surface in a fresh tab and captures it. All image
// resources are awaited (load, error, or 10s timeout each) before capture,
// so a missing background yields a blank background rather than aborting.
func (r *Rasterizer) Rasterize(ctx context.Context, surfaceHTML string, opts CaptureOptions) ([]byte, error) {
	tabCtx, cancel := chromedp.NewContext(r.browserCtx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var timeoutCancel context.CancelFunc
		tabCtx, timeoutCancel = context.WithDeadline(tabCtx, deadline)
		defer timeoutCancel()
	}

	var shot []byte
	var settled bool

	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(SurfaceWidth, SurfaceHeight, chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, surfaceHTML).Do(ctx)
		}),
		chromedp.Evaluate(imageSettleScript, &settled, func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.Sleep(settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			capture := page.CaptureScreenshot()
			if opts.Quality < 100 {
				capture = capture.
					WithFormat(page.CaptureScreenshotFormatJpeg).
					WithQuality(int64(opts.Quality))
			} else {
				capture = capture.WithFormat(page.CaptureScreenshotFormatPng)
			}
			buf, err := capture.Do(ctx)
			if err != nil {
				return err
			}
			shot = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize surface: %w", err)
	}

	if len(shot) < minCaptureBytes {
		slog.Warn("Rasterizer produced near-empty capture", "bytes", len(shot))
		return nil, ErrCaptureTooSmall
	}

	return shot, nil
}
