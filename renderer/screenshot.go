package renderer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"birthday-twins/config"
	"birthday-twins/internal/logger"
)

const USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

// PixelRatio 는 카드 PNG 의 배율이다.
const PixelRatio = 3

const cardSelector = "#birthday-card"

// Screenshotter 는 헤드리스 크롬으로 카드 HTML 을 PNG 로 찍는다.
type Screenshotter struct {
	chromePath string
	timeout    time.Duration
}

func NewScreenshotter(cfg config.RendererConfig) *Screenshotter {
	chromePath := cfg.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Screenshotter{chromePath: chromePath, timeout: timeout}
}

func (s *Screenshotter) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(USER_AGENT),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)
	// 경로가 없으면 chromedp 가 PATH 에서 크롬을 찾는다.
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	return opts
}

// CardPNG 는 html 문서를 빈 탭에 심고 #birthday-card 요소만 PixelRatio 배율로 캡처한다.
func (s *Screenshotter) CardPNG(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, s.allocatorOptions()...)
	defer cancel()
	tabCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	tabCtx, cancel = context.WithTimeout(tabCtx, s.timeout)
	defer cancel()

	started := time.Now()
	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitVisible(cardSelector, chromedp.ByQuery),
		// 웹 폰트와 외부 이미지 로딩 대기
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ScreenshotScale(cardSelector, PixelRatio, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("capture card: %w", err)
	}

	logger.DebugWithFields("card captured", logger.Fields{
		"bytes":       len(buf),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return buf, nil
}
